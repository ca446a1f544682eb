package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"sirivaram/sirictl/internal/api"
	"sirivaram/sirictl/internal/domain"
	"sirivaram/sirictl/internal/util"

	"github.com/charmbracelet/huh"
)

// ErrAborted is returned when the user cancels a form.
var ErrAborted = errors.New("aborted")

const eventDateLayout = "2006-01-02 15:04"

// runForm runs a huh form with the accessible mode taken from the
// environment, mapping user aborts to ErrAborted.
func runForm(groups ...*huh.Group) error {
	accessible := os.Getenv("ACCESSIBLE") != ""
	if err := huh.NewForm(groups...).WithAccessible(accessible).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return err
	}
	return nil
}

// BlogForm collects a blog post. prefill, when non-nil, seeds the
// fields for an edit flow.
func BlogForm(prefill *api.BlogInput) (*api.BlogInput, error) {
	var in api.BlogInput
	in.IsActive = true
	if prefill != nil {
		in = *prefill
	}

	group := huh.NewGroup(
		huh.NewInput().
			Title("Title").
			Value(&in.Title).
			Validate(func(s string) error {
				return util.ValidateRequired("title", s)
			}),
		huh.NewInput().
			Title("Author").
			Value(&in.Author).
			Validate(func(s string) error {
				return util.ValidateRequired("author", s)
			}),
		huh.NewText().
			Title("Content").
			Value(&in.Content).
			Validate(func(s string) error {
				return util.ValidateRequired("content", s)
			}),
		huh.NewConfirm().
			Title("Publish immediately?").
			Affirmative("Active").
			Negative("Inactive").
			Value(&in.IsActive),
	)

	if err := runForm(group); err != nil {
		return nil, err
	}

	in.Title = strings.TrimSpace(in.Title)
	in.Author = strings.TrimSpace(in.Author)
	return &in, nil
}

// EventForm collects an event. prefill, when non-nil, seeds the fields
// for an edit flow.
func EventForm(prefill *api.EventInput) (*api.EventInput, error) {
	var in api.EventInput
	var dateText string
	if prefill != nil {
		in = *prefill
		if !prefill.Date.IsZero() {
			dateText = prefill.Date.Format(eventDateLayout)
		}
	}

	group := huh.NewGroup(
		huh.NewInput().
			Title("Title").
			Value(&in.Title).
			Validate(func(s string) error {
				return util.ValidateRequired("title", s)
			}),
		huh.NewInput().
			Title("Venue").
			Value(&in.Venue).
			Validate(func(s string) error {
				return util.ValidateRequired("venue", s)
			}),
		huh.NewInput().
			Title("Date").
			Description("Format: YYYY-MM-DD HH:MM").
			Value(&dateText).
			Validate(func(s string) error {
				if _, err := time.ParseInLocation(eventDateLayout, strings.TrimSpace(s), time.Local); err != nil {
					return fmt.Errorf("date must match %s", eventDateLayout)
				}
				return nil
			}),
		huh.NewText().
			Title("Description").
			Value(&in.Description),
	)

	if err := runForm(group); err != nil {
		return nil, err
	}

	date, err := time.ParseInLocation(eventDateLayout, strings.TrimSpace(dateText), time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	in.Title = strings.TrimSpace(in.Title)
	in.Venue = strings.TrimSpace(in.Venue)
	in.Date = date
	return &in, nil
}

// GalleryForm collects a gallery image. prefill, when non-nil, seeds
// the fields for an edit flow.
func GalleryForm(prefill *api.GalleryInput) (*api.GalleryInput, error) {
	var in api.GalleryInput
	if prefill != nil {
		in = *prefill
	}

	group := huh.NewGroup(
		huh.NewInput().
			Title("Title").
			Value(&in.Title).
			Validate(func(s string) error {
				return util.ValidateRequired("title", s)
			}),
		huh.NewInput().
			Title("Image URL").
			Value(&in.ImageURL).
			Validate(func(s string) error {
				return util.ValidateURL("image URL", s)
			}),
		huh.NewInput().
			Title("Category").
			Value(&in.Category).
			Validate(func(s string) error {
				return util.ValidateRequired("category", s)
			}),
	)

	if err := runForm(group); err != nil {
		return nil, err
	}

	in.Title = strings.TrimSpace(in.Title)
	in.ImageURL = strings.TrimSpace(in.ImageURL)
	in.Category = strings.TrimSpace(in.Category)
	return &in, nil
}

// FooterForm edits the site footer, seeded with the current content so
// a save without changes is a no-op update.
func FooterForm(current domain.Footer) (*domain.Footer, error) {
	footer := current

	contact := huh.NewGroup(
		huh.NewText().
			Title("About").
			Value(&footer.About).
			Validate(func(s string) error {
				return util.ValidateRequired("about", s)
			}),
		huh.NewInput().
			Title("Email").
			Value(&footer.Email).
			Validate(func(s string) error {
				return util.ValidateRequired("email", s)
			}),
		huh.NewInput().
			Title("Phone").
			Value(&footer.Phone).
			Validate(util.ValidateMobile),
		huh.NewInput().
			Title("Address").
			Value(&footer.Address).
			Validate(func(s string) error {
				return util.ValidateRequired("address", s)
			}),
	)

	// Social links are optional, but when present they must be URLs.
	optionalURL := func(field string) func(string) error {
		return func(s string) error {
			if strings.TrimSpace(s) == "" {
				return nil
			}
			return util.ValidateURL(field, s)
		}
	}
	social := huh.NewGroup(
		huh.NewInput().
			Title("Facebook").
			Value(&footer.Facebook).
			Validate(optionalURL("Facebook link")),
		huh.NewInput().
			Title("Instagram").
			Value(&footer.Instagram).
			Validate(optionalURL("Instagram link")),
		huh.NewInput().
			Title("YouTube").
			Value(&footer.YouTube).
			Validate(optionalURL("YouTube link")),
	)

	if err := runForm(contact, social); err != nil {
		return nil, err
	}

	footer.Email = strings.TrimSpace(footer.Email)
	footer.Phone = strings.TrimSpace(footer.Phone)
	return &footer, nil
}
