package placement

import (
	"regexp"
	"strings"
)

// Section labels recognized while splitting CV text into zones.
const (
	sectionExperience = "experience"
	sectionSkills     = "skills"
	sectionEducation  = "education"
)

var zoneBulletPattern = regexp.MustCompile(`^\s*[-•*]\s+`)

// ParseZones splits plain CV text into the four scored zones. The first
// non-empty line is the headline; prose before the first section header is the
// narrative; lines under a skills header are skills groupings; the first
// contiguous bullet run under an experience header is the most recent role.
func ParseZones(text string) CVZones {
	var zones CVZones
	var narrative []string

	section := ""
	headlineSet := false
	recentDone := false

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			// A blank line after the first bullet run ends the most recent role
			if section == sectionExperience && len(zones.RecentRoleBullets) > 0 {
				recentDone = true
			}
			continue
		}

		if header := sectionOf(line); header != "" {
			section = header
			recentDone = false
			continue
		}

		if !headlineSet {
			zones.Headline = line
			headlineSet = true
			continue
		}

		switch section {
		case "":
			narrative = append(narrative, line)
		case sectionSkills:
			zones.SkillsGroupings = append(zones.SkillsGroupings, line)
		case sectionExperience:
			if zoneBulletPattern.MatchString(line) {
				if !recentDone {
					zones.RecentRoleBullets = append(zones.RecentRoleBullets,
						zoneBulletPattern.ReplaceAllString(line, ""))
				}
			} else if len(zones.RecentRoleBullets) > 0 {
				// A role heading after bullets means a new, older role
				recentDone = true
			}
		}
	}

	zones.Narrative = strings.Join(narrative, " ")
	return zones
}

// sectionOf reports which section a line starts, or "" when it is not a
// header. Headers are short non-bullet lines naming a canonical section.
func sectionOf(line string) string {
	if zoneBulletPattern.MatchString(line) {
		return ""
	}
	trimmed := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(line), ":"))
	if len(strings.Fields(trimmed)) > 4 {
		return ""
	}
	for _, section := range []string{sectionExperience, sectionSkills, sectionEducation} {
		if strings.Contains(trimmed, section) {
			return section
		}
	}
	return ""
}
