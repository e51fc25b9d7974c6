package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

// ErrAborted is returned when the user cancels a prompt.
var ErrAborted = errors.New("aborted")

// ConfirmRecreate asks whether an existing virtual environment should be
// recreated from scratch or reused as-is.
func ConfirmRecreate(envDir string) (bool, error) {
	var recreate bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("A virtual environment already exists at %s.", envDir)).
				Description("Recreate it from scratch? Reusing keeps its installed packages in place.").
				Affirmative("Recreate").
				Negative("Reuse").
				Value(&recreate),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, ErrAborted
		}
		return false, err
	}

	return recreate, nil
}
