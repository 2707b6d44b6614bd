package sheet

// Columns maps athlete fields to header names.
type Columns struct {
	ID          string
	Competition string
	Team        string
	License     string
	LastName    string
	FirstName   string
	Sex         string
	BirthDate   string
	Club        string
}

// DefaultColumns returns the headers of the federation registration export.
func DefaultColumns() Columns {
	return Columns{
		ID:          "id",
		Competition: "Competition",
		Team:        "Equipe",
		License:     "Numéro de licence fftri long",
		LastName:    "Nom",
		FirstName:   "Prénom",
		Sex:         "Sexe",
		BirthDate:   "Date de naissance",
		Club:        "Nom du club de la licence fftri",
	}
}

// Option applies a configuration option to a read.
type Option func(*reader)

// WithColumns sets the header names used to locate athlete fields.
func WithColumns(c Columns) Option {
	return func(r *reader) {
		r.columns = c
	}
}

// WithSheet selects the worksheet of an Excel workbook by name.
func WithSheet(name string) Option {
	return func(r *reader) {
		r.sheet = name
	}
}
