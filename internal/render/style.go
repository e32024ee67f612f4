// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

// styleBlock is the CSS prelude for the styled card layout, including the
// alternating odd/even item classes.
const styleBlock = `
<style>
.paper-list {
    list-style-type: none;
    padding: 0;
    margin: 0;
}
.paper-item {
    padding: 12px 15px;
    margin: 15px 0;
    border-radius: 8px;
    border-left: 4px solid #ddd;
}
.paper-item-odd {
    background-color: #f8f9fa;
    border-left-color: #4285f4;
}
.paper-item-even {
    background-color: #ffffff;
    border-left-color: #34a853;
}
.paper-header {
    display: flex;
    justify-content: space-between;
    align-items: flex-start;
    margin-bottom: 8px;
}
.paper-title {
    font-weight: bold;
    font-size: 1.05em;
    margin: 0;
    flex: 1;
}
.paper-date {
    color: #666;
    font-size: 0.9em;
    white-space: nowrap;
    margin-left: 15px;
}
.paper-authors {
    color: #555;
    font-style: italic;
    margin-bottom: 5px;
}
.paper-meta {
    display: flex;
    justify-content: space-between;
    align-items: center;
    font-size: 0.9em;
    color: #666;
}
.paper-categories {
    font-family: monospace;
    background-color: #e9ecef;
    padding: 2px 6px;
    border-radius: 4px;
}
.paper-link {
    color: #1a73e8;
    text-decoration: none;
}
.paper-link:hover {
    text-decoration: underline;
}
.paper-comments {
    color: #d93025;
    font-size: 0.85em;
    margin-top: 4px;
    white-space: pre-wrap;
    word-wrap: break-word;
}
.paper-abstract {
    margin-top: 10px;
    font-size: 0.9em;
    line-height: 1.4;
    color: #555;
    white-space: pre-wrap;
    word-wrap: break-word;
}
.abstract-label {
    font-weight: bold;
    color: #666;
    margin-bottom: 3px;
}
</style>

`
