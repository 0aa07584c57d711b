package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportEndToEnd(t *testing.T) {
	c := newTestChart()
	// Two months of activity: dues, a donation, rent going out.
	post("2014-01-20", leg{c.dues, "-40"}, leg{c.alice, "40"})
	post("2014-02-10", leg{c.dues, "-40"}, leg{c.alice, "40"})
	post("2014-02-12", leg{c.dues, "-40"}, leg{c.bob, "40"})
	post("2014-02-14", leg{c.donations, "-25"}, leg{c.carol, "25"})
	post("2014-01-15", leg{c.rent, "500"}, leg{c.bank, "-500"})
	post("2014-02-15", leg{c.rent, "500"}, leg{c.bank, "-500"})

	svc := NewService(c.book, Config{
		MonthsBefore: 2,
		MonthsAfter:  2,
		AnchorDay:    6,
		Metrics:      DefaultMetrics(),
	}, quietLogger())

	series, err := svc.Report(day("2014-03-10"))
	require.NoError(t, err)
	require.Len(t, series, 4, "two historical windows, two projected")

	// Ascending, contiguous boundaries throughout.
	for i := 1; i < len(series); i++ {
		assert.True(t, series[i].Date.After(series[i-1].Date))
	}
	assert.Equal(t, day("2014-02-06"), series[0].Date)
	assert.Equal(t, day("2014-05-06"), series[3].Date)

	seam := series[1]
	assert.True(t, seam.Historical)
	assert.True(t, seam.Projected)
	assert.True(t, seam.ProjectedCapital.Equal(seam.Capital))

	// dues avg (40+80)/2 + donations avg 12.5 = 72.5 income per month;
	// expenses avg -500 is all rent, so the general run rate is zero
	// and the rent schedule re-adds -500 per window.
	assert.Equal(t, "80", seam.Dues.String())
	first := series[2]
	assert.True(t, first.ProjectedCapital.Equal(seam.Capital.Add(dec("72.5")).Sub(dec("500"))))
	assert.Equal(t, 2, first.ProjectedMembers)
	assert.Equal(t, "1500", first.ProjectedCapitalTarget.String())
}
