package form

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/alimgiray/showcase/internal/models"
	"github.com/google/uuid"
)

// AddContributor appends a contributor. An empty username is ignored and
// reported as false.
func (d *Draft) AddContributor(username string, role models.Role) (Contributor, bool) {
	username = strings.TrimSpace(username)
	if username == "" {
		return Contributor{}, false
	}
	if role == "" {
		role = models.RoleContributor
	}

	contributor := Contributor{
		ID:             uuid.NewString(),
		GithubUsername: username,
		Role:           role,
	}
	d.Contributors = append(d.Contributors, contributor)
	delete(d.Errors, FieldContributors)
	return contributor, true
}

// RemoveContributor removes the contributor with the given id. Owners stay.
func (d *Draft) RemoveContributor(id string) error {
	for i, contributor := range d.Contributors {
		if contributor.ID != id {
			continue
		}
		if contributor.Role == models.RoleOwner {
			return ErrOwnerRemoval
		}
		d.Contributors = append(d.Contributors[:i:i], d.Contributors[i+1:]...)
		return nil
	}
	return ErrContributorMissing
}

// AddFeature appends an empty feature slot.
func (d *Draft) AddFeature() {
	d.Project.KeyFeatures = append(d.Project.KeyFeatures, "")
}

func (d *Draft) UpdateFeature(index int, value string) error {
	if index < 0 || index >= len(d.Project.KeyFeatures) {
		return fmt.Errorf("%w: feature %d", ErrIndexOutOfRange, index)
	}
	d.Project.KeyFeatures[index] = value
	delete(d.Errors, FieldKeyFeatures)
	return nil
}

func (d *Draft) RemoveFeature(index int) error {
	features, err := removeAt(d.Project.KeyFeatures, index)
	if err != nil {
		return fmt.Errorf("%w: feature %d", err, index)
	}
	d.Project.KeyFeatures = features
	return nil
}

func (d *Draft) AddHighlight(highlight models.AcademicHighlight) error {
	if isBlank(highlight.Title) {
		return &Notice{Title: "Missing information", Description: "Please provide a highlight title"}
	}
	d.Project.AcademicHighlights = append(d.Project.AcademicHighlights, highlight)
	return nil
}

func (d *Draft) RemoveHighlight(index int) error {
	highlights, err := removeAt(d.Project.AcademicHighlights, index)
	if err != nil {
		return fmt.Errorf("%w: highlight %d", err, index)
	}
	d.Project.AcademicHighlights = highlights
	return nil
}

// StageImage fills the image staging slot.
func (d *Draft) StageImage(candidate Image) {
	d.StagedImage = candidate
}

// AddImage appends candidate to the project images. A rejected candidate
// leaves both the images and the staging slot as they were.
func (d *Draft) AddImage(candidate Image) error {
	if candidate.URL == "" || candidate.Title == "" {
		return &Notice{Title: "Missing information", Description: "Please provide an image URL and title"}
	}
	if !isAbsoluteURL(candidate.URL) {
		return &Notice{Title: "Invalid URL", Description: "Please provide a valid image URL"}
	}

	d.Project.ProjectImages = append(d.Project.ProjectImages, candidate)
	d.StagedImage = Image{}
	return nil
}

func (d *Draft) RemoveImage(index int) error {
	images, err := removeAt(d.Project.ProjectImages, index)
	if err != nil {
		return fmt.Errorf("%w: image %d", err, index)
	}
	d.Project.ProjectImages = images
	return nil
}

func isAbsoluteURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" {
		return false
	}
	return parsed.Host != "" || parsed.Opaque != ""
}

func removeAt[T any](items []T, index int) ([]T, error) {
	if index < 0 || index >= len(items) {
		return items, ErrIndexOutOfRange
	}
	result := make([]T, 0, len(items)-1)
	result = append(result, items[:index]...)
	return append(result, items[index+1:]...), nil
}
