// Package prompt wraps the interactive questions the wizard asks. Each
// primitive blocks until the user answers.
package prompt

import "github.com/AlecAivazis/survey/v2"

// Prompter asks a single question at a time.
type Prompter interface {
	// Input asks for free text. A non-nil validate func re-prompts with its
	// error text until the answer passes.
	Input(message, def string, validate func(string) error) (string, error)

	// Select asks for one choice out of options.
	Select(message string, options []string, def string) (string, error)

	// Confirm asks a yes/no question.
	Confirm(message string, def bool) (bool, error)
}

// Survey implements Prompter on the terminal.
type Survey struct {
	opts []survey.AskOpt
}

// NewSurvey creates a terminal Prompter. Options are passed through to every
// question, which lets tests redirect stdio.
func NewSurvey(opts ...survey.AskOpt) Survey {
	return Survey{opts: opts}
}

func (s Survey) Input(message, def string, validate func(string) error) (string, error) {
	opts := append([]survey.AskOpt{}, s.opts...)
	if validate != nil {
		opts = append(opts, survey.WithValidator(func(answer interface{}) error {
			text, _ := answer.(string)
			return validate(text)
		}))
	}

	var answer string
	err := survey.AskOne(&survey.Input{Message: message, Default: def}, &answer, opts...)
	return answer, err
}

func (s Survey) Select(message string, options []string, def string) (string, error) {
	var answer string
	err := survey.AskOne(&survey.Select{Message: message, Options: options, Default: def}, &answer, s.opts...)
	return answer, err
}

func (s Survey) Confirm(message string, def bool) (bool, error) {
	answer := def
	err := survey.AskOne(&survey.Confirm{Message: message, Default: def}, &answer, s.opts...)
	return answer, err
}
