package facts

import "sort"

type Fact struct {
	ID    string `json:"id"`
	Short string `json:"short"`
	Full  string `json:"full"`
}

// Table is a read-only set of facts keyed by id.
type Table struct {
	byID map[string]Fact
	ids  []string
}

func NewTable(facts ...Fact) Table {
	t := Table{byID: make(map[string]Fact, len(facts))}
	for _, f := range facts {
		if _, ok := t.byID[f.ID]; !ok {
			t.ids = append(t.ids, f.ID)
		}
		t.byID[f.ID] = f
	}
	sort.Strings(t.ids)
	return t
}

// Default 頁面上 "Did you know" 的內容
func Default() Table {
	return NewTable(
		Fact{
			ID:    "fact1",
			Short: "Exercise improves heart health.",
			Full:  "Regular exercise strengthens the heart muscle, lowers blood pressure, and helps manage weight.",
		},
		Fact{
			ID:    "fact2",
			Short: "Smoking damages your arteries.",
			Full:  "Smoking causes inflammation and narrowing of blood vessels, increasing heart disease risk.",
		},
	)
}

func (t Table) Lookup(id string) (Fact, bool) {
	f, ok := t.byID[id]
	return f, ok
}

func (t Table) All() []Fact {
	out := make([]Fact, 0, len(t.ids))
	for _, id := range t.ids {
		out = append(out, t.byID[id])
	}
	return out
}
