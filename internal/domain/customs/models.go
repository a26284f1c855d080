package customs

// Record ist ein einzelner Datensatz der Zoll-API. Die Felder sind erst zur
// Laufzeit bekannt; die Einfüge-Reihenfolge bleibt erhalten und entspricht der
// Reihenfolge im API-Payload.
type Record struct {
	fields []string
	values map[string]any
}

func NewRecord() *Record {
	return &Record{
		values: make(map[string]any),
	}
}

// Set setzt einen Feldwert. Ein bereits vorhandenes Feld behält seine Position.
func (r *Record) Set(field string, value any) {
	if _, exists := r.values[field]; !exists {
		r.fields = append(r.fields, field)
	}
	r.values[field] = value
}

func (r *Record) Get(field string) (any, bool) {
	value, ok := r.values[field]
	return value, ok
}

func (r *Record) Has(field string) bool {
	_, ok := r.values[field]
	return ok
}

// Fields liefert die Feldnamen in Einfüge-Reihenfolge.
func (r *Record) Fields() []string {
	return r.fields
}

func (r *Record) Len() int {
	return len(r.fields)
}

// Dataset ist die geordnete Folge aller Datensätze eines Abrufs.
type Dataset []*Record
