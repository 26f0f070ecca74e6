package document

// All coordinates are in points from the top-left corner of the page.
const (
	marginLeft        = 50.0
	metaColumnX       = 350.0
	contentRight      = 550.0
	topMargin         = 50.0
	bottomMarginSpace = 100.0
	footerOffset      = 40.0

	tableTopDefault = 340.0
	tableTopWithGST = 360.0
	tableHeaderGap  = 30.0
	rowHeight       = 25.0

	totalsGap       = 10.0
	totalsRuleGap   = 15.0
	totalsLineStep  = 20.0
	totalsLastLine  = 14.0
	notesGap        = 40.0
	notesLabelStep  = 20.0
	notesTextHeight = 60.0
)

type position struct {
	Page int
	Y    float64
}

type totalsPlan struct {
	Page      int
	RuleY     float64
	SubtotalY float64
	DiscountY float64 // zero when no discount line is drawn
	GSTY      float64
	TotalY    float64
}

type notesPlan struct {
	Page   int
	LabelY float64
	TextY  float64
}

type layout struct {
	PageHeight float64
	TableTop   float64
	Rows       []position
	Totals     totalsPlan
	Notes      *notesPlan
	Pages      int
}

func (l layout) pageBottom() float64 {
	return l.PageHeight - bottomMarginSpace
}

// planLayout places every table row, the totals block and the optional notes
// block. A row that would cross the bottom margin starts a new page at the
// top margin; the totals and notes blocks move whole in the same way.
func planLayout(pageHeight float64, itemCount int, customerHasGST, hasDiscount, hasNotes bool) layout {
	l := layout{
		PageHeight: pageHeight,
		TableTop:   tableTopDefault,
		Rows:       make([]position, 0, itemCount),
		Pages:      1,
	}
	if customerHasGST {
		l.TableTop = tableTopWithGST
	}
	bottom := l.pageBottom()

	page := 1
	y := l.TableTop + tableHeaderGap
	for i := 0; i < itemCount; i++ {
		if y+rowHeight > bottom {
			page++
			y = topMargin
		}
		l.Rows = append(l.Rows, position{Page: page, Y: y})
		y += rowHeight
	}

	if y+totalsBlockHeight(hasDiscount) > bottom {
		page++
		y = topMargin
	}
	t := totalsPlan{Page: page, RuleY: y + totalsGap}
	t.SubtotalY = t.RuleY + totalsRuleGap
	next := t.SubtotalY + totalsLineStep
	if hasDiscount {
		t.DiscountY = next
		next += totalsLineStep
	}
	t.GSTY = next
	t.TotalY = t.GSTY + totalsLineStep
	l.Totals = t

	if hasNotes {
		labelY := t.TotalY + notesGap
		if labelY+notesLabelStep+notesTextHeight > bottom {
			page++
			labelY = topMargin
		}
		l.Notes = &notesPlan{Page: page, LabelY: labelY, TextY: labelY + notesLabelStep}
	}

	l.Pages = page
	return l
}

func totalsBlockHeight(hasDiscount bool) float64 {
	h := totalsGap + totalsRuleGap + 2*totalsLineStep + totalsLastLine
	if hasDiscount {
		h += totalsLineStep
	}
	return h
}
