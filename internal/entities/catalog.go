package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReadingStatus is the lifecycle state of a book on the shelf.
// The values are stored verbatim, the Portuguese labels are only
// used for display.
type ReadingStatus string

const (
	StatusQueroLer   ReadingStatus = "QUERO_LER"
	StatusLendo      ReadingStatus = "LENDO"
	StatusLido       ReadingStatus = "LIDO"
	StatusPausado    ReadingStatus = "PAUSADO"
	StatusAbandonado ReadingStatus = "ABANDONADO"
)

// DefaultReadingStatus is applied when a book is created without an
// explicit status.
const DefaultReadingStatus = StatusQueroLer

var readingStatusLabels = map[ReadingStatus]string{
	StatusQueroLer:   "Quero Ler",
	StatusLendo:      "Lendo",
	StatusLido:       "Lido",
	StatusPausado:    "Pausado",
	StatusAbandonado: "Abandonado",
}

// AllReadingStatuses returns every valid status in display order.
func AllReadingStatuses() []ReadingStatus {
	return []ReadingStatus{
		StatusQueroLer,
		StatusLendo,
		StatusLido,
		StatusPausado,
		StatusAbandonado,
	}
}

// Valid reports whether s is one of the five known statuses.
func (s ReadingStatus) Valid() bool {
	_, ok := readingStatusLabels[s]
	return ok
}

// Label returns the human-readable label for the status. Unknown
// statuses are returned as-is so stale data still renders.
func (s ReadingStatus) Label() string {
	if label, ok := readingStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Genre is a named category applied to zero or more books. Names are
// unique (case-sensitive) across the whole taxonomy.
type Genre struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:100" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (g *Genre) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}

// Book is a single catalog record. Optional numeric fields are
// pointers so that "never set" and "set to zero" stay distinguishable;
// optional text fields use the empty string as absent.
//
// CurrentPage is only meaningful while Status is LENDO. Storage does
// not enforce that: it is a display convention honored by the
// dashboard aggregator.
type Book struct {
	ID          string        `gorm:"primaryKey;size:36" json:"id"`
	Title       string        `gorm:"index;size:512" json:"title"`
	Author      string        `gorm:"index;size:256" json:"author"`
	GenreID     *string       `gorm:"index;size:36" json:"genre_id,omitempty"`
	Genre       *Genre        `gorm:"foreignKey:GenreID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"genre,omitempty"`
	Year        *int          `json:"year,omitempty"`
	Pages       *int          `json:"pages,omitempty"`
	Rating      *int          `json:"rating,omitempty"`
	Synopsis    string        `gorm:"type:text" json:"synopsis,omitempty"`
	Cover       string        `gorm:"size:2048" json:"cover,omitempty"`
	CurrentPage *int          `json:"current_page,omitempty"`
	Status      ReadingStatus `gorm:"size:20;default:'QUERO_LER'" json:"status"`
	ISBN        string        `gorm:"size:20" json:"isbn,omitempty"`
	Notes       string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func (b *Book) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

func (Genre) TableName() string {
	return "genres"
}

func (Book) TableName() string {
	return "books"
}
