package reviewdesk

// ReviewRow pairs one machine-evaluated criterion with the reviewer's score
// for the same item. The machine fields are a read-only snapshot; reviewer
// edits go through HumanEvalStore.Update and never touch the fetched record.
type ReviewRow struct {
	Item         string
	SubItem      string
	Description  string
	MachineScore float64
	Rationale    string
	SubCriteria  []SubCriterion

	// HumanScore is the reviewer's entry for this item, if any.
	HumanScore    float64
	HasHumanScore bool
}

// RecordView is one evaluation record prepared for display. Ordinal
// attributes the record when a transcription carries several evaluator
// passes (1-based).
type RecordView struct {
	Ordinal               int
	Classification        string
	OverallScore          float64
	ImprovementSuggestion string
	Rows                  []ReviewRow
}

// MergeRows builds display rows for a criteria list, reconciling each row
// with the reviewer's score for (transcription, item). The input criteria
// are copied, not aliased.
func MergeRows(transcriptionID string, criteria []Criterion, scores *HumanEvalStore) []ReviewRow {
	rows := make([]ReviewRow, 0, len(criteria))
	for _, c := range criteria {
		row := ReviewRow{
			Item:         c.Item,
			SubItem:      c.SubItem,
			Description:  c.Description,
			MachineScore: c.Score,
			Rationale:    c.Rationale,
		}
		if len(c.SubCriteria) > 0 {
			row.SubCriteria = make([]SubCriterion, len(c.SubCriteria))
			copy(row.SubCriteria, c.SubCriteria)
		}
		if score, ok := scores.Get(transcriptionID, c.Item); ok {
			row.HumanScore = score
			row.HasHumanScore = true
		}
		rows = append(rows, row)
	}
	return rows
}

// MergeRecords prepares every evaluation record of a transcription for
// display. Zero records is a valid empty-results state, not an error.
func MergeRecords(t Transcription, records []EvaluationRecord, scores *HumanEvalStore) []RecordView {
	views := make([]RecordView, 0, len(records))
	for i, record := range records {
		views = append(views, RecordView{
			Ordinal:               i + 1,
			Classification:        record.Classification,
			OverallScore:          record.OverallScore,
			ImprovementSuggestion: record.ImprovementSuggestion,
			Rows:                  MergeRows(t.ID, record.Criteria, scores),
		})
	}
	return views
}

// MergeSummary builds display rows for the machine summary carried on the
// transcription itself.
func MergeSummary(t Transcription, scores *HumanEvalStore) []ReviewRow {
	return MergeRows(t.ID, t.SummaryData, scores)
}
