// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package papers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconcileMergeIsIdempotent(t *testing.T) {
	s := Store{}
	batch := []TopicPapers{
		{Topic: "SLAM", Papers: Papers{
			"2401.00001": "|**2024-01-01**|**Paper A**|Ann|cs.CV|[2401.00001](http://arxiv.org/abs/2401.00001)||\n",
			"2401.00002": "|**2024-01-02**|**Paper B**|Bob|cs.RO|[2401.00002](http://arxiv.org/abs/2401.00002)||\n",
		}},
	}

	rep := Reconcile(s, batch, []string{"SLAM"}, false)
	assert.Equal(t, 2, rep.Added["SLAM"])
	assert.Empty(t, rep.RemovedTopics)
	assert.Equal(t, 2, s.Count())

	// Re-fetching the same papers adds nothing.
	rep = Reconcile(s, batch, []string{"SLAM"}, false)
	assert.Equal(t, 0, rep.Added["SLAM"])
	assert.Equal(t, 2, s.Count())
}

func TestReconcileOverwritesExistingKey(t *testing.T) {
	s := Store{"SLAM": Papers{"2401.00001": "old row"}}
	batch := []TopicPapers{
		{Topic: "SLAM", Papers: Papers{"2401.00001": "new row"}},
	}

	rep := Reconcile(s, batch, []string{"SLAM"}, false)
	assert.Equal(t, 0, rep.Added["SLAM"])
	assert.Equal(t, "new row", s["SLAM"]["2401.00001"])
}

func TestReconcileDropsStaleTopics(t *testing.T) {
	s := Store{
		"SLAM": Papers{"2401.00001": "row"},
		"Old Topic": Papers{
			"2301.00001": "row",
			"2301.00002": "row",
		},
	}
	batch := []TopicPapers{
		{Topic: "SLAM", Papers: Papers{"2401.00002": "row"}},
	}

	rep := Reconcile(s, batch, []string{"SLAM"}, false)
	assert.Equal(t, map[string]int{"Old Topic": 2}, rep.RemovedTopics)
	assert.NotContains(t, s, "Old Topic")
	assert.Len(t, s["SLAM"], 2)
}

func TestReconcileClearExistingReplacesStore(t *testing.T) {
	s := Store{
		"SLAM": Papers{
			"2301.00001": "prior row",
			"2301.00002": "prior row",
		},
	}
	batch := []TopicPapers{
		{Topic: "SLAM", Papers: Papers{"2401.00001": "fresh row"}},
	}

	rep := Reconcile(s, batch, []string{"SLAM"}, true)
	assert.Equal(t, 1, rep.Added["SLAM"])
	assert.Equal(t, Store{"SLAM": Papers{"2401.00001": "fresh row"}}, s)
}

func TestReconcileCopiesBatchPapers(t *testing.T) {
	batch := []TopicPapers{
		{Topic: "SLAM", Papers: Papers{"2401.00001": "row"}},
	}

	first := Store{}
	Reconcile(first, batch, []string{"SLAM"}, false)
	first["SLAM"]["2402.00002"] = "local row"

	// The same batch reconciled into a second store must not see the
	// first store's mutation.
	second := Store{}
	Reconcile(second, batch, []string{"SLAM"}, false)
	assert.Len(t, second["SLAM"], 1)
}
