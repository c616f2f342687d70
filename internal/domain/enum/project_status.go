package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ProjectStatus represents the lifecycle stage of a project
type ProjectStatus string

const (
	ProjectStatusUpcoming  ProjectStatus = "Upcoming"
	ProjectStatusOngoing   ProjectStatus = "Ongoing"
	ProjectStatusCompleted ProjectStatus = "Completed"
)

// ProjectStatusUnknown is the dashboard bucket for rows carrying a
// status outside the known set.
const ProjectStatusUnknown = "Unknown"

func (s ProjectStatus) String() string {
	return string(s)
}

// IsValid reports whether s is one of the known statuses.
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusUpcoming, ProjectStatusOngoing, ProjectStatusCompleted:
		return true
	}
	return false
}

func (s ProjectStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *ProjectStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = ProjectStatus(str)
	return nil
}

func (s ProjectStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *ProjectStatus) Scan(value interface{}) error {
	if value == nil {
		*s = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = ProjectStatus(v)
	case []byte:
		*s = ProjectStatus(string(v))
	}
	return nil
}
