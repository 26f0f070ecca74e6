package document

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const letterHeight = 792.0

func TestPlanLayout_SinglePage(t *testing.T) {
	plan := planLayout(letterHeight, 2, false, false, false)

	require.Len(t, plan.Rows, 2)
	assert.Equal(t, position{Page: 1, Y: 370}, plan.Rows[0])
	assert.Equal(t, position{Page: 1, Y: 395}, plan.Rows[1])
	assert.Equal(t, 1, plan.Pages)
	assert.Equal(t, totalsPlan{Page: 1, RuleY: 430, SubtotalY: 445, GSTY: 465, TotalY: 485}, plan.Totals)
	assert.Nil(t, plan.Notes)
}

func TestPlanLayout_CustomerGSTShiftsTable(t *testing.T) {
	plan := planLayout(letterHeight, 1, true, false, false)

	assert.Equal(t, 360.0, plan.TableTop)
	assert.Equal(t, 390.0, plan.Rows[0].Y)
}

func TestPlanLayout_DiscountLine(t *testing.T) {
	plan := planLayout(letterHeight, 0, false, true, false)

	assert.Equal(t, totalsPlan{Page: 1, RuleY: 380, SubtotalY: 395, DiscountY: 415, GSTY: 435, TotalY: 455}, plan.Totals)
}

func TestPlanLayout_PageBreakBetweenRows(t *testing.T) {
	plan := planLayout(letterHeight, 30, false, false, false)

	require.Len(t, plan.Rows, 30)
	// 12 rows fit below the header on the first page.
	assert.Equal(t, position{Page: 1, Y: 645}, plan.Rows[11])
	assert.Equal(t, position{Page: 2, Y: 50}, plan.Rows[12])
	assert.Equal(t, position{Page: 2, Y: 475}, plan.Rows[29])
	assert.Equal(t, 2, plan.Totals.Page)
	assert.Equal(t, 510.0, plan.Totals.RuleY)
	assert.Equal(t, 2, plan.Pages)
}

func TestPlanLayout_NoRowCrossesBottomMargin(t *testing.T) {
	for _, n := range []int{1, 11, 12, 13, 37, 38, 100, 250} {
		for _, gst := range []bool{false, true} {
			plan := planLayout(letterHeight, n, gst, true, true)

			for i, row := range plan.Rows {
				assert.LessOrEqual(t, row.Y+rowHeight, plan.pageBottom(), "row %d of %d", i, n)
				if i > 0 {
					prev := plan.Rows[i-1]
					if row.Page == prev.Page {
						assert.Equal(t, prev.Y+rowHeight, row.Y)
					} else {
						assert.Equal(t, prev.Page+1, row.Page)
						assert.Equal(t, topMargin, row.Y)
					}
				}
			}
			assert.LessOrEqual(t, plan.Totals.TotalY+totalsLastLine, plan.pageBottom())
			require.NotNil(t, plan.Notes)
			assert.LessOrEqual(t, plan.Notes.TextY+notesTextHeight, plan.pageBottom())
		}
	}
}

func TestPlanLayout_PageCountMatchesUsedHeight(t *testing.T) {
	usable := letterHeight - bottomMarginSpace - topMargin
	firstPageRows := int(math.Floor((letterHeight - bottomMarginSpace - (tableTopDefault + tableHeaderGap)) / rowHeight))
	perPage := int(math.Floor(usable / rowHeight))

	for _, n := range []int{40, 62, 100, 500} {
		plan := planLayout(letterHeight, n, false, false, false)

		rest := n - firstPageRows
		tablePages := 1 + int(math.Ceil(float64(rest)/float64(perPage)))
		lastRowY := plan.Rows[n-1].Y
		expected := tablePages
		if lastRowY+rowHeight+totalsBlockHeight(false) > plan.pageBottom() {
			expected++
		}
		assert.Equal(t, expected, plan.Pages, "items=%d", n)
		assert.Equal(t, tablePages, plan.Rows[n-1].Page, "items=%d", n)
	}
}

func TestPlanLayout_TotalsMoveWhole(t *testing.T) {
	// Ten rows end at y=620; the 79pt totals block would cross 692.
	plan := planLayout(letterHeight, 10, false, false, false)

	assert.Equal(t, 1, plan.Rows[9].Page)
	assert.Equal(t, 2, plan.Totals.Page)
	assert.Equal(t, topMargin+totalsGap, plan.Totals.RuleY)
	assert.Equal(t, 2, plan.Pages)

	plan = planLayout(letterHeight, 9, false, false, false)
	assert.Equal(t, 1, plan.Totals.Page)
	assert.Equal(t, 1, plan.Pages)
}

func TestPlanLayout_NotesMoveWhole(t *testing.T) {
	plan := planLayout(letterHeight, 5, false, false, true)

	require.NotNil(t, plan.Notes)
	assert.Equal(t, notesPlan{Page: 1, LabelY: 600, TextY: 620}, *plan.Notes)
	assert.Equal(t, 1, plan.Pages)

	plan = planLayout(letterHeight, 5, false, true, true)

	require.NotNil(t, plan.Notes)
	assert.Equal(t, notesPlan{Page: 2, LabelY: 50, TextY: 70}, *plan.Notes)
	assert.Equal(t, 1, plan.Totals.Page)
	assert.Equal(t, 2, plan.Pages)
}
