package form

import "strings"

// ParseTechStack splits a comma-separated list into trimmed, non-blank,
// de-duplicated labels, keeping first-seen order.
func ParseTechStack(text string) []string {
	labels := []string{}
	for _, token := range strings.Split(text, ",") {
		labels = addLabel(labels, strings.TrimSpace(token))
	}
	return labels
}

// FormatTechStack joins labels the way the text input shows them.
func FormatTechStack(labels []string) string {
	return strings.Join(labels, ", ")
}

func addLabel(labels []string, label string) []string {
	if label == "" {
		return labels
	}
	for _, existing := range labels {
		if existing == label {
			return labels
		}
	}
	return append(labels, label)
}

// AddTechnology appends label unless it is already present.
func (d *Draft) AddTechnology(label string) {
	d.Project.TechStack = addLabel(d.Project.TechStack, strings.TrimSpace(label))
}

// RemoveTechnology drops every entry equal to the trimmed label.
func (d *Draft) RemoveTechnology(label string) {
	label = strings.TrimSpace(label)
	kept := make([]string, 0, len(d.Project.TechStack))
	for _, existing := range d.Project.TechStack {
		if existing != label {
			kept = append(kept, existing)
		}
	}
	d.Project.TechStack = kept
}

// TechStackText is the comma-joined form of the tech stack.
func (d *Draft) TechStackText() string {
	return FormatTechStack(d.Project.TechStack)
}
