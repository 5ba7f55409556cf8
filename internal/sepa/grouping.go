// =============================================================================
// CBI Payment Export - Transaction Grouping
// =============================================================================
//
// Grouping partitions a message's transactions into the payment information
// blocks the schema requires. Transactions sharing a requested execution
// date, batch booking flag, and service level land in the same block.
//
// The partition is stable: groups appear in first-seen key order and
// transactions keep their relative input order within a group, so repeated
// renders of the same message produce identical block ordering. The
// intermediate map is local to one call; the function has no side effects.
//
// =============================================================================

package sepa

// GroupKey identifies one payment information block. RequestedDate is the
// rendered date form so the key stays a plain comparable value.
type GroupKey struct {
	RequestedDate string
	BatchBooking  bool
	ServiceLevel  string
}

// Group is an ordered batch of transactions sharing one key.
type Group struct {
	Key          GroupKey
	Transactions []Transaction
}

// groupKey derives the grouping key for a transaction.
func groupKey(t Transaction) GroupKey {
	return GroupKey{
		RequestedDate: t.RequestedDate.Format("2006-01-02"),
		BatchBooking:  t.BatchBooking,
		ServiceLevel:  t.ServiceLevel,
	}
}

// GroupTransactions partitions transactions into groups in first-seen key
// order. Every transaction belongs to exactly one group; none are dropped
// or duplicated. Complexity is O(n) in the transaction count.
func GroupTransactions(transactions []Transaction) []Group {
	groups := make(map[GroupKey]int)
	ordered := []Group{} // Maintain order of first occurrence

	for _, transaction := range transactions {
		key := groupKey(transaction)

		index, exists := groups[key]
		if !exists {
			index = len(ordered)
			groups[key] = index
			ordered = append(ordered, Group{Key: key})
		}

		ordered[index].Transactions = append(ordered[index].Transactions, transaction)
	}

	return ordered
}
