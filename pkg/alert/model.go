// pkg/alert/model.go

package alert

import (
	"github.com/go-playground/validator/v10"

	cerr "github.com/cockroachdb/errors"
)

// Alert is one security-event record as written by wazuh-analysisd.
// Optional members are pointers so every access is a checked lookup;
// the validate tags cover the minimum a message needs.
type Alert struct {
	// ID is the alert reference token, reused as the message timestamp.
	ID        string     `json:"id"`
	Rule      Rule       `json:"rule"`
	Location  string     `json:"location" validate:"required"`
	Agent     *Agent     `json:"agent,omitempty"`
	Agentless *Agentless `json:"agentless,omitempty"`
	FullLog   string     `json:"full_log,omitempty"`
}

// Rule identifies the detection rule that fired.
type Rule struct {
	ID          string `json:"id" validate:"required"`
	Level       *int   `json:"level" validate:"required"`
	Description string `json:"description,omitempty"`
}

// Agent describes the monitored endpoint that produced the event.
type Agent struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Agentless describes an agentless-monitored host.
type Agentless struct {
	Host string `json:"host"`
}

var validate = validator.New()

// Validate checks the fields message construction depends on:
// rule.id, rule.level and location must be present.
func (a *Alert) Validate() error {
	if err := validate.Struct(a); err != nil {
		return cerr.Wrap(err, "alert is missing required fields")
	}
	return nil
}
