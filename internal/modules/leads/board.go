package leads

import (
	"errors"
	"strings"
)

// Board column keys, in display order.
const (
	BucketPorContactar = "por-contactar"
	BucketEnProgreso   = "en-progreso"
	BucketCalificado   = "calificado"
	BucketCerrado      = "cerrado"
	BucketError        = "error"
)

var ErrUnknownBucket = errors.New("unknown board column")

// Bucket is one column of the lead board. Status is what a card dropped on the
// column gets written as.
type Bucket struct {
	Key     string
	Label   string
	Status  string
	Aliases []string
}

var Buckets = []Bucket{
	{Key: BucketPorContactar, Label: "Por contactar", Status: StatusPending,
		Aliases: []string{"nuevo", "pendiente", "por-contactar", "new", "pending"}},
	{Key: BucketEnProgreso, Label: "En progreso", Status: "en-progreso",
		Aliases: []string{"en-progreso", "contactado", "in-progress", "seguimiento"}},
	{Key: BucketCalificado, Label: "Calificado", Status: "calificado",
		Aliases: []string{"calificado", "qualified"}},
	{Key: BucketCerrado, Label: "Cerrado", Status: "cerrado",
		Aliases: []string{"cerrado", "ganado", "perdido", "closed"}},
	{Key: BucketError, Label: "Error", Status: StatusError,
		Aliases: []string{"error", "fallido", "failed"}},
}

var aliasIndex = func() map[string]string {
	idx := make(map[string]string)
	for _, b := range Buckets {
		for _, a := range b.Aliases {
			idx[a] = b.Key
		}
	}
	return idx
}()

func normalize(status string) string {
	s := strings.ToLower(strings.TrimSpace(status))
	s = strings.ReplaceAll(s, "_", "-")
	return strings.Join(strings.Fields(strings.ReplaceAll(s, "-", " ")), "-")
}

// BucketFor returns the column key for a free-text status. Unknown or empty
// statuses land in the first column.
func BucketFor(status string) string {
	if key, ok := aliasIndex[normalize(status)]; ok {
		return key
	}
	return BucketPorContactar
}

// Column is a board column with its leads.
type Column struct {
	Key   string              `json:"key"`
	Label string              `json:"label"`
	Leads []ContactSubmission `json:"leads"`
}

// Group partitions leads into the board columns. Every column is present, and
// leads keep their input order within a column.
func Group(leads []ContactSubmission) []Column {
	cols := make([]Column, len(Buckets))
	pos := make(map[string]int, len(Buckets))
	for i, b := range Buckets {
		cols[i] = Column{Key: b.Key, Label: b.Label, Leads: []ContactSubmission{}}
		pos[b.Key] = i
	}
	for _, l := range leads {
		i := pos[BucketFor(l.Status)]
		cols[i].Leads = append(cols[i].Leads, l)
	}
	return cols
}

// Move returns lead with its status set to the canonical status of the target column.
func Move(lead ContactSubmission, bucketKey string) (ContactSubmission, error) {
	for _, b := range Buckets {
		if b.Key == bucketKey {
			lead.Status = b.Status
			return lead, nil
		}
	}
	return lead, ErrUnknownBucket
}
