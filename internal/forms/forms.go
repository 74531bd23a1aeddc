// Package forms turns raw field maps submitted by callers into the
// typed commands the repositories accept.
//
// Parsing is a pure pre-check: nothing here touches storage. Failures
// come back as a validation.Errors map keyed by field name so callers
// can reflect each message onto its form field. Empty-string optional
// fields are treated as absent, not as empty values.
package forms

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"bookshelf/internal/entities"
)

const minPublicationYear = 1000

var errNotAnInteger = errors.New("must be a whole number")

// ParseCreateBook validates the raw fields of a book-creation request.
// Title and author are required; year, pages, rating and current_page
// are bound-checked; cover must be a well-formed URL; status must be
// one of the known reading statuses (it may be omitted entirely, the
// repository then applies the default).
func ParseCreateBook(form map[string]string) (*entities.CreateBookCommand, validation.Errors) {
	errs := validation.Errors{}

	year := parseOptionalInt(form, "year", errs)
	pages := parseOptionalInt(form, "pages", errs)
	rating := parseOptionalInt(form, "rating", errs)
	currentPage := parseOptionalInt(form, "current_page", errs)

	checkField(errs, "title", form["title"], validation.Required.Error("must be provided"))
	checkField(errs, "author", form["author"], validation.Required.Error("must be provided"))
	checkField(errs, "year", year, atLeast(minPublicationYear), notAfterCurrentYear())
	checkField(errs, "pages", pages, atLeast(1))
	checkField(errs, "rating", rating, atLeast(1), atMost(5))
	checkField(errs, "current_page", currentPage, atLeast(0))
	checkField(errs, "cover", form["cover"], is.URL.Error("must be a valid URL"))
	checkField(errs, "status", form["status"],
		validation.In(readingStatusValues()...).Error("invalid reading status"))

	if len(errs) > 0 {
		return nil, errs
	}

	cmd := &entities.CreateBookCommand{
		Title:       form["title"],
		Author:      form["author"],
		Year:        year,
		Pages:       pages,
		Rating:      rating,
		Synopsis:    form["synopsis"],
		Cover:       form["cover"],
		CurrentPage: currentPage,
		Status:      entities.ReadingStatus(form["status"]),
		ISBN:        form["isbn"],
		Notes:       form["notes"],
	}
	if genreID := form["genre_id"]; genreID != "" {
		cmd.GenreID = &genreID
	}
	return cmd, nil
}

// ParseUpdateBook validates a partial book update. Only the keys
// present in the map end up in the command; everything else stays
// untouched on the stored record. A present-but-empty genre_id clears
// the genre association, a present-but-empty optional field is ignored,
// and a present-but-empty title or author is rejected.
func ParseUpdateBook(form map[string]string) (*entities.UpdateBookCommand, validation.Errors) {
	errs := validation.Errors{}
	cmd := &entities.UpdateBookCommand{}

	if title, ok := form["title"]; ok {
		if title == "" {
			errs["title"] = errors.New("must be provided")
		} else {
			cmd.Title = &title
		}
	}
	if author, ok := form["author"]; ok {
		if author == "" {
			errs["author"] = errors.New("must be provided")
		} else {
			cmd.Author = &author
		}
	}
	if genreID, ok := form["genre_id"]; ok {
		cmd.GenreID = &genreID
	}

	if year := parseOptionalInt(form, "year", errs); year != nil {
		checkField(errs, "year", year, atLeast(minPublicationYear), notAfterCurrentYear())
		cmd.Year = year
	}
	if pages := parseOptionalInt(form, "pages", errs); pages != nil {
		checkField(errs, "pages", pages, atLeast(1))
		cmd.Pages = pages
	}
	if rating := parseOptionalInt(form, "rating", errs); rating != nil {
		checkField(errs, "rating", rating, atLeast(1), atMost(5))
		cmd.Rating = rating
	}
	if currentPage := parseOptionalInt(form, "current_page", errs); currentPage != nil {
		checkField(errs, "current_page", currentPage, atLeast(0))
		cmd.CurrentPage = currentPage
	}
	if cover, ok := form["cover"]; ok && cover != "" {
		checkField(errs, "cover", cover, is.URL.Error("must be a valid URL"))
		cmd.Cover = &cover
	}
	if status, ok := form["status"]; ok && status != "" {
		checkField(errs, "status", status,
			validation.In(readingStatusValues()...).Error("invalid reading status"))
		s := entities.ReadingStatus(status)
		cmd.Status = &s
	}
	if synopsis, ok := form["synopsis"]; ok && synopsis != "" {
		cmd.Synopsis = &synopsis
	}
	if isbn, ok := form["isbn"]; ok && isbn != "" {
		cmd.ISBN = &isbn
	}
	if notes, ok := form["notes"]; ok && notes != "" {
		cmd.Notes = &notes
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return cmd, nil
}

// ParseGenreName validates the single field of a genre create or
// rename request and returns the trimmed name.
func ParseGenreName(form map[string]string) (string, validation.Errors) {
	errs := validation.Errors{}
	name := strings.TrimSpace(form["name"])
	checkField(errs, "name", name, validation.Required.Error("must be provided"))
	if len(errs) > 0 {
		return "", errs
	}
	return name, nil
}

// checkField runs the rules against value and records the first
// failure under the field key. Nil pointers and empty strings are
// skipped by every rule except Required, which is what keeps optional
// fields optional.
func checkField(errs validation.Errors, field string, value interface{}, rules ...validation.Rule) {
	if _, taken := errs[field]; taken {
		return
	}
	if err := validation.Validate(value, rules...); err != nil {
		errs[field] = err
	}
}

// The threshold rules below replace validation.Min/Max for parsed
// integers: ozzo's threshold rules treat 0 as an empty value and skip
// it entirely, which would wave through rating=0 or pages=0. These
// compare the number directly and leave absent (nil) values alone.

func atLeast(min int) validation.Rule {
	return validation.By(func(value interface{}) error {
		if n, ok := intValue(value); ok && n < min {
			return fmt.Errorf("must be no less than %d", min)
		}
		return nil
	})
}

func atMost(max int) validation.Rule {
	return validation.By(func(value interface{}) error {
		if n, ok := intValue(value); ok && n > max {
			return fmt.Errorf("must be no greater than %d", max)
		}
		return nil
	})
}

func notAfterCurrentYear() validation.Rule {
	return validation.By(func(value interface{}) error {
		if n, ok := intValue(value); ok && n > time.Now().Year() {
			return errors.New("must not be in the future")
		}
		return nil
	})
}

func intValue(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case *int:
		if v == nil {
			return 0, false
		}
		return *v, true
	}
	return 0, false
}

// parseOptionalInt coerces a numeric form field. A missing key or an
// empty value is absent; anything non-numeric is recorded as a field
// error.
func parseOptionalInt(form map[string]string, field string, errs validation.Errors) *int {
	raw, ok := form[field]
	if !ok || raw == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		errs[field] = errNotAnInteger
		return nil
	}
	return &n
}

func readingStatusValues() []interface{} {
	statuses := entities.AllReadingStatuses()
	values := make([]interface{}, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, string(s))
	}
	return values
}
