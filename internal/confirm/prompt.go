package confirm

import "github.com/charmbracelet/huh"

// TerminalPresenter renders each pending request as an interactive
// terminal form and resolves it with the user's answer. A render error
// (for example a closed TTY) dismisses the request, which the caller
// sees as a decline.
func TerminalPresenter(c *Controller) func(*Request) {
	return func(req *Request) {
		var accepted bool
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(req.Title).
				Description(req.Message).
				Affirmative("Yes").
				Negative("No").
				Value(&accepted),
		))
		if err := form.Run(); err != nil {
			c.Dismiss()
			return
		}
		c.Resolve(accepted)
	}
}

// AutoApprove resolves every request affirmatively without prompting.
// Used for --yes invocations and scripted runs.
func AutoApprove(c *Controller) func(*Request) {
	return func(*Request) {
		c.Resolve(true)
	}
}
