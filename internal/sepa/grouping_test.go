package sepa

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// txOn returns a valid transaction with the given reference, requested date
// and service level.
func txOn(reference string, date time.Time, serviceLevel string, batchBooking bool) Transaction {
	transaction := validTransaction()
	transaction.Reference = reference
	transaction.RequestedDate = date
	transaction.ServiceLevel = serviceLevel
	transaction.BatchBooking = batchBooking
	return transaction
}

func TestGroupTransactionsSingleKeyKeepsInputOrder(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	transactions := []Transaction{
		txOn("A", date, "SEPA", false),
		txOn("B", date, "SEPA", false),
		txOn("C", date, "SEPA", false),
	}

	groups := GroupTransactions(transactions)

	require.Len(t, groups, 1)
	require.Len(t, groups[0].Transactions, 3)
	assert.Equal(t, "A", groups[0].Transactions[0].Reference)
	assert.Equal(t, "B", groups[0].Transactions[1].Reference)
	assert.Equal(t, "C", groups[0].Transactions[2].Reference)
}

func TestGroupTransactionsFirstSeenKeyOrder(t *testing.T) {
	day1 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	// Interleaved keys: day2 first, then day1, then day2 again.
	transactions := []Transaction{
		txOn("A", day2, "SEPA", false),
		txOn("B", day1, "SEPA", false),
		txOn("C", day2, "SEPA", false),
		txOn("D", day1, "SEPA", true),
	}

	groups := GroupTransactions(transactions)

	require.Len(t, groups, 3)
	assert.Equal(t, "2024-03-02", groups[0].Key.RequestedDate)
	assert.Equal(t, "2024-03-01", groups[1].Key.RequestedDate)
	assert.True(t, groups[2].Key.BatchBooking)

	// Intra-group order follows input order.
	assert.Equal(t, "A", groups[0].Transactions[0].Reference)
	assert.Equal(t, "C", groups[0].Transactions[1].Reference)
	assert.Equal(t, "B", groups[1].Transactions[0].Reference)
	assert.Equal(t, "D", groups[2].Transactions[0].Reference)
}

func TestGroupTransactionsNoDropNoDuplicate(t *testing.T) {
	day1 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	transactions := []Transaction{
		txOn("A", day1, "SEPA", false),
		txOn("B", day2, "URGP", false),
		txOn("C", day1, "SEPA", true),
		txOn("D", day1, "SEPA", false),
		txOn("E", day2, "URGP", false),
	}

	groups := GroupTransactions(transactions)

	var regrouped []string
	for _, group := range groups {
		for _, transaction := range group.Transactions {
			regrouped = append(regrouped, transaction.Reference)
		}
	}

	assert.ElementsMatch(t, []string{"A", "B", "C", "D", "E"}, regrouped)
	assert.Len(t, regrouped, len(transactions))
}

func TestGroupTransactionsEmpty(t *testing.T) {
	assert.Empty(t, GroupTransactions(nil))
}

func TestGroupKeyFields(t *testing.T) {
	transaction := txOn("A", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "URGP", true)
	transaction.Amount = decimal.NewFromInt(1)

	key := groupKey(transaction)

	assert.Equal(t, GroupKey{
		RequestedDate: "2024-03-01",
		BatchBooking:  true,
		ServiceLevel:  "URGP",
	}, key)
}
