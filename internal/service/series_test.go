package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildHistorySingleWindow(t *testing.T) {
	c := newTestChart()
	post("2014-01-15", leg{c.bank, "1000"}, leg{c.donations, "-1000"})
	post("2014-01-20", leg{c.prepaid, "300"}, leg{c.bank, "-300"})
	post("2014-02-20", leg{c.rent, "500"}, leg{c.bank, "-500"})
	post("2014-02-10", leg{c.dues, "-40"}, leg{c.alice, "40"})
	post("2014-02-24", leg{c.dues, "-40"}, leg{c.bob, "40"})
	post("2014-03-01", leg{c.dues, "-40"}, leg{c.carol, "40"})

	svc := NewService(c.book, Config{
		MonthsBefore:  1,
		AnchorDay:     6,
		Metrics:       DefaultMetrics(),
		SeedOverrides: map[string]int{"2014-03-06": 3},
	}, quietLogger())

	history, err := svc.BuildHistory(day("2014-03-10"))
	require.NoError(t, err)
	require.Len(t, history, 1)

	snap := history[0]
	assert.Equal(t, day("2014-03-06"), snap.Date)
	assert.True(t, snap.Historical)

	assert.Equal(t, "200", snap.Assets.String(), "prepaid rent is excluded from the asset rollup")
	assert.Equal(t, "120", snap.Liabilities.String())
	assert.Equal(t, "320", snap.Capital.String())

	assert.Equal(t, "120", snap.Dues.String(), "three dues payments of 40 reported as positive income")
	assert.Equal(t, 3, snap.Members)
	assert.Equal(t, "-500", snap.Expenses.String())
	assert.Equal(t, "-500", snap.Rent.String())
	assert.Equal(t, "120", snap.Income.String())
	assert.Equal(t, "1500", snap.CapitalTarget.String(), "three-month buffer on net expenses")

	assert.Equal(t, 3, snap.Joined, "first window takes the injected seed")
	assert.Equal(t, 0, snap.Departed)
}

func TestBuildHistoryMembershipDeltas(t *testing.T) {
	c := newTestChart()
	post("2014-01-20", leg{c.dues, "-40"}, leg{c.alice, "40"})
	post("2014-02-20", leg{c.dues, "-40"}, leg{c.bob, "40"})

	svc := NewService(c.book, Config{
		MonthsBefore: 2,
		AnchorDay:    6,
		Metrics:      DefaultMetrics(),
	}, quietLogger())

	history, err := svc.BuildHistory(day("2014-03-10"))
	require.NoError(t, err)
	require.Len(t, history, 2)

	first, second := history[0], history[1]
	assert.Equal(t, 1, first.Members)
	assert.Equal(t, 0, first.Joined, "no seed, no previous window to diff against")

	assert.Equal(t, 1, second.Members)
	assert.Equal(t, 1, second.Joined, "Bob joined")
	assert.Equal(t, 1, second.Departed, "Alice stopped paying")
}

func TestBuildHistoryEmptyWindowSet(t *testing.T) {
	c := newTestChart()
	svc := NewService(c.book, Config{
		MonthsBefore: 0,
		AnchorDay:    6,
		Metrics:      DefaultMetrics(),
	}, quietLogger())

	_, err := svc.BuildHistory(day("2014-03-10"))
	assert.ErrorIs(t, err, ErrEmptyWindowSet)
}

func TestBuildHistoryMissingAccountAborts(t *testing.T) {
	c := newTestChart()
	m := DefaultMetrics()
	m.Donations.Account = "Irregular donations"

	svc := NewService(c.book, Config{
		MonthsBefore: 1,
		AnchorDay:    6,
		Metrics:      m,
	}, quietLogger())

	_, err := svc.BuildHistory(day("2014-03-10"))
	require.Error(t, err, "a partial report would corrupt every derived value")
}
