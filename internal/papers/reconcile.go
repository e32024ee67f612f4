// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package papers

// ReconcileReport holds the per-topic outcome of a reconcile pass, so the
// caller decides how to present it.
type ReconcileReport struct {
	// Added maps each fetched topic to the number of entries the pass
	// actually added (net of dedup by entry key).
	Added map[string]int

	// RemovedTopics maps each stale topic that was dropped to the number
	// of entries it held.
	RemovedTopics map[string]int
}

// Reconcile merges a fetched batch into the store in place.
//
// When clearExisting is set the store is replaced wholesale by the batch:
// every prior topic is discarded and each fetched topic counts its full
// size as added. Otherwise topics present in the store but absent from
// configuredTopics are dropped first, then each fetched topic is merged:
// an existing key is overwritten by the newer row (identity, not content,
// decides dedup) and the added count is the key-count delta, so re-fetching
// an already-stored paper adds zero. The merge is idempotent.
func Reconcile(s Store, batch []TopicPapers, configuredTopics []string, clearExisting bool) ReconcileReport {
	rep := ReconcileReport{
		Added:         make(map[string]int),
		RemovedTopics: make(map[string]int),
	}

	if clearExisting {
		for topic := range s {
			delete(s, topic)
		}
	} else if s.Count() > 0 {
		configured := make(map[string]bool, len(configuredTopics))
		for _, name := range configuredTopics {
			configured[name] = true
		}
		for topic, entries := range s {
			if !configured[topic] {
				rep.RemovedTopics[topic] = len(entries)
				delete(s, topic)
			}
		}
	}

	for _, tp := range batch {
		existing, ok := s[tp.Topic]
		if !ok {
			// Copy so the store never aliases the caller's batch; the
			// same batch is reconciled into more than one store.
			fresh := make(Papers, len(tp.Papers))
			for k, v := range tp.Papers {
				fresh[k] = v
			}
			s[tp.Topic] = fresh
			rep.Added[tp.Topic] = len(fresh)
			continue
		}

		before := len(existing)
		for k, v := range tp.Papers {
			existing[k] = v
		}
		rep.Added[tp.Topic] = len(existing) - before
	}

	return rep
}
