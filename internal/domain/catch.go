package domain

// Catch is a single magnet-fishing find. CreatedBy holds the session email of
// whoever last wrote the record: edits replace the whole document, including
// attribution.
type Catch struct {
	ID        string `db:"id"`
	Date      string `db:"date"`
	Country   string `db:"country"`
	City      string `db:"city"`
	CreatedBy string `db:"created_by"`
	CreatedAt string `db:"created_at"`
}

type Country struct {
	Code string `db:"code"`
	Name string `db:"name"`
}
