package form

import "github.com/alimgiray/showcase/internal/models"

// Serialize builds the creation request for the draft. It does not modify the draft.
func (d *Draft) Serialize() *models.CreateProjectRequest {
	p := d.Project

	request := &models.CreateProjectRequest{
		Name:               p.Name,
		Description:        p.Description,
		GithubURL:          p.GithubURL,
		DemoURL:            p.DemoURL,
		TechStack:          append([]string{}, p.TechStack...),
		ImageURL:           p.ImageURL,
		ProblemStatement:   p.ProblemStatement,
		Status:             p.Status,
		ProjectType:        p.ProjectType,
		KeyFeatures:        []string{},
		AcademicHighlights: append([]models.AcademicHighlight{}, p.AcademicHighlights...),
		ProjectImages:      make([]models.ProjectImageInput, 0, len(p.ProjectImages)),
		Users:              make([]models.ProjectUserInput, 0, len(d.Contributors)),
	}

	for _, feature := range p.KeyFeatures {
		if !isBlank(feature) {
			request.KeyFeatures = append(request.KeyFeatures, feature)
		}
	}
	for _, image := range p.ProjectImages {
		request.ProjectImages = append(request.ProjectImages, models.ProjectImageInput{
			URL:         image.URL,
			Title:       image.Title,
			Description: image.Description,
		})
	}
	for _, contributor := range d.Contributors {
		request.Users = append(request.Users, models.ProjectUserInput{
			GithubUsername: contributor.GithubUsername,
			Role:           contributor.Role,
		})
	}
	if d.owner != nil {
		request.OwnerID = d.owner.ID
	}

	return request
}
