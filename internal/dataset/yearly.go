package dataset

import (
	"sort"

	"github.com/unbound-force/ontostats/internal/taxonomy"
)

// YearTable is a year-indexed stereotype count table. Rows are the
// sorted distinct years present in the models; columns follow the
// kind's vocabulary order. Years with no contributing model have no
// row.
type YearTable struct {
	// Labels is the column order (the stereotype vocabulary).
	Labels []string `json:"labels" msgpack:"labels"`

	// Years lists the row years in ascending order.
	Years []int `json:"years" msgpack:"years"`

	// Cells holds one row per year, aligned with Labels. Raw tables
	// hold integral counts; normalized tables hold fractions.
	Cells [][]float64 `json:"cells" msgpack:"cells"`
}

// Row returns the cell row for a year.
func (t *YearTable) Row(year int) ([]float64, bool) {
	for i, y := range t.Years {
		if y == year {
			return t.Cells[i], true
		}
	}
	return nil, false
}

// Sum returns the grand total over all cells.
func (t *YearTable) Sum() float64 {
	total := 0.0
	for _, row := range t.Cells {
		for _, v := range row {
			total += v
		}
	}
	return total
}

// NormalizeOverall returns a new table with every cell divided by the
// grand total, so all cells sum to 1. An all-zero table stays all
// zero. The source table is left unmodified.
func (t *YearTable) NormalizeOverall() *YearTable {
	total := t.Sum()
	out := t.emptyCopy()
	for i, row := range t.Cells {
		for j, v := range row {
			out.Cells[i][j] = safeDiv(v, total)
		}
	}
	return out
}

// NormalizeYearly returns a new table with each row divided by that
// row's sum, so every year's distribution sums to 1. Rows whose raw
// sum is 0 stay all zero. The source table is left unmodified.
func (t *YearTable) NormalizeYearly() *YearTable {
	out := t.emptyCopy()
	for i, row := range t.Cells {
		rowSum := 0.0
		for _, v := range row {
			rowSum += v
		}
		for j, v := range row {
			out.Cells[i][j] = safeDiv(v, rowSum)
		}
	}
	return out
}

// emptyCopy allocates a table with the same shape and labels.
func (t *YearTable) emptyCopy() *YearTable {
	cells := make([][]float64, len(t.Cells))
	for i := range cells {
		cells[i] = make([]float64, len(t.Labels))
	}
	return &YearTable{Labels: t.Labels, Years: t.Years, Cells: cells}
}

// YearTableKeys lists the case keys produced by CalculateYearly, in
// export order.
func YearTableKeys() []string {
	return []string{
		"class_ow", "relation_ow", "class_mw", "relation_mw",
		"class_ow_overall", "relation_ow_overall",
		"class_ow_yearly", "relation_ow_yearly",
		"class_mw_overall", "relation_mw_overall",
		"class_mw_yearly", "relation_mw_yearly",
	}
}

// CalculateYearly buckets the per-model stereotype vectors by
// creation year for both kinds, producing occurrence-weighted (ow)
// and model-weighted (mw) tables plus their overall and yearly
// normalizations. A model whose vector width differs from the
// vocabulary is a fatal integrity error.
func (d *Dataset) CalculateYearly() error {
	tables := make(map[string]*YearTable)

	for _, kind := range []taxonomy.Kind{taxonomy.KindClass, taxonomy.KindRelation} {
		vocab := d.Vocabulary(kind)
		width := vocab.Len()

		ow := make(map[int][]float64)
		mw := make(map[int][]float64)

		for _, m := range d.models {
			counts := m.Stereotypes(kind)
			if len(counts) != width {
				return integrityf("mismatch in number of columns for model %s in %s analysis", m.Name, kind)
			}
			vec := vocab.Vector(counts)

			if ow[m.Year] == nil {
				ow[m.Year] = make([]float64, width)
				mw[m.Year] = make([]float64, width)
			}
			for j, v := range vec {
				ow[m.Year][j] += float64(v)
				if v > 0 {
					mw[m.Year][j]++
				}
			}
		}

		owTable := buildYearTable(vocab.Labels(), ow)
		mwTable := buildYearTable(vocab.Labels(), mw)

		tables[string(kind)+"_ow"] = owTable
		tables[string(kind)+"_mw"] = mwTable
		tables[string(kind)+"_ow_overall"] = owTable.NormalizeOverall()
		tables[string(kind)+"_ow_yearly"] = owTable.NormalizeYearly()
		tables[string(kind)+"_mw_overall"] = mwTable.NormalizeOverall()
		tables[string(kind)+"_mw_yearly"] = mwTable.NormalizeYearly()
	}

	d.yearTables = tables
	return nil
}

// buildYearTable converts a year-keyed accumulation map into a table
// with rows sorted ascending by year.
func buildYearTable(labels []string, rows map[int][]float64) *YearTable {
	years := make([]int, 0, len(rows))
	for year := range rows {
		years = append(years, year)
	}
	sort.Ints(years)

	cells := make([][]float64, len(years))
	for i, year := range years {
		cells[i] = rows[year]
	}
	return &YearTable{Labels: labels, Years: years, Cells: cells}
}

// YearModelCount is the number of models created in one year and its
// share of the whole dataset.
type YearModelCount struct {
	Year      int     `json:"year" msgpack:"year"`
	NumModels int     `json:"num_models" msgpack:"num_models"`
	Ratio     float64 `json:"ratio" msgpack:"ratio"`
}

// CalculateModelsByYear counts models per creation year, ascending by
// year.
func (d *Dataset) CalculateModelsByYear() {
	counts := make(map[int]int)
	for _, m := range d.models {
		counts[m.Year]++
	}

	years := make([]int, 0, len(counts))
	for year := range counts {
		years = append(years, year)
	}
	sort.Ints(years)

	total := float64(len(d.models))
	out := make([]YearModelCount, len(years))
	for i, year := range years {
		out[i] = YearModelCount{
			Year:      year,
			NumModels: counts[year],
			Ratio:     safeDiv(float64(counts[year]), total),
		}
	}
	d.modelsByYear = out
}

// SeriesCell is one per-year value of a count series together with
// its derived ratio and cumulative columns.
type SeriesCell struct {
	// Count is the raw per-year count.
	Count int `json:"count" msgpack:"count"`

	// Ratio is Count over the series' grand total.
	Ratio float64 `json:"ratio" msgpack:"ratio"`

	// Cumulative is the running sum of Count up to and including
	// this year.
	Cumulative int `json:"cumulative" msgpack:"cumulative"`

	// CumulativeRatio is Cumulative over the series' grand total.
	CumulativeRatio float64 `json:"cumulative_ratio" msgpack:"cumulative_ratio"`

	// RatioToTotal and CumulativeRatioToTotal relate the series to
	// the kind's overall stereotype total instead of the series' own.
	RatioToTotal           float64 `json:"ratio_to_total" msgpack:"ratio_to_total"`
	CumulativeRatioToTotal float64 `json:"cumulative_ratio_to_total" msgpack:"cumulative_ratio_to_total"`
}

// KindYearCounts groups the four count series of one stereotype kind
// for a year: the overall count and its ontouml/none/other split.
type KindYearCounts struct {
	Num     SeriesCell `json:"num" msgpack:"num"`
	Ontouml SeriesCell `json:"ontouml" msgpack:"ontouml"`
	None    SeriesCell `json:"none" msgpack:"none"`
	Other   SeriesCell `json:"other" msgpack:"other"`
}

// YearCounts is the per-year stereotype count breakdown over both
// kinds.
type YearCounts struct {
	Year     int            `json:"year" msgpack:"year"`
	Class    KindYearCounts `json:"class" msgpack:"class"`
	Relation KindYearCounts `json:"relation" msgpack:"relation"`
}

// CalculateCountsByYear accumulates per-year ontouml/none/other
// stereotype counts for both kinds and derives ratio, cumulative and
// to-total columns, ascending by year.
func (d *Dataset) CalculateCountsByYear() {
	type rawCounts struct{ num, ontouml, none, other int }
	perYear := make(map[taxonomy.Kind]map[int]*rawCounts)
	years := make(map[int]bool)

	for _, kind := range []taxonomy.Kind{taxonomy.KindClass, taxonomy.KindRelation} {
		perYear[kind] = make(map[int]*rawCounts)
		for _, m := range d.models {
			years[m.Year] = true
			rc := perYear[kind][m.Year]
			if rc == nil {
				rc = &rawCounts{}
				perYear[kind][m.Year] = rc
			}
			ontouml, none, other := m.CategoryCounts(kind)
			rc.num += ontouml + none + other
			rc.ontouml += ontouml
			rc.none += none
			rc.other += other
		}
	}

	sorted := make([]int, 0, len(years))
	for year := range years {
		sorted = append(sorted, year)
	}
	sort.Ints(sorted)

	out := make([]YearCounts, len(sorted))
	for i, year := range sorted {
		out[i].Year = year
	}

	for _, kind := range []taxonomy.Kind{taxonomy.KindClass, taxonomy.KindRelation} {
		var totals rawCounts
		for _, rc := range perYear[kind] {
			totals.num += rc.num
			totals.ontouml += rc.ontouml
			totals.none += rc.none
			totals.other += rc.other
		}

		var cum rawCounts
		for i, year := range sorted {
			rc := perYear[kind][year]
			if rc == nil {
				rc = &rawCounts{}
			}
			cum.num += rc.num
			cum.ontouml += rc.ontouml
			cum.none += rc.none
			cum.other += rc.other

			kyc := KindYearCounts{
				Num:     seriesCell(rc.num, cum.num, totals.num, totals.num),
				Ontouml: seriesCell(rc.ontouml, cum.ontouml, totals.ontouml, totals.num),
				None:    seriesCell(rc.none, cum.none, totals.none, totals.num),
				Other:   seriesCell(rc.other, cum.other, totals.other, totals.num),
			}
			if kind == taxonomy.KindClass {
				out[i].Class = kyc
			} else {
				out[i].Relation = kyc
			}
		}
	}

	d.countsByYear = out
}

// seriesCell derives the ratio and cumulative columns of one series
// value.
func seriesCell(count, cumulative, seriesTotal, kindTotal int) SeriesCell {
	return SeriesCell{
		Count:                  count,
		Ratio:                  safeDiv(float64(count), float64(seriesTotal)),
		Cumulative:             cumulative,
		CumulativeRatio:        safeDiv(float64(cumulative), float64(seriesTotal)),
		RatioToTotal:           safeDiv(float64(count), float64(kindTotal)),
		CumulativeRatioToTotal: safeDiv(float64(cumulative), float64(kindTotal)),
	}
}
