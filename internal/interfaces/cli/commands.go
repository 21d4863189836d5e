package cli

func commandTable() []command {
	return []command{
		{name: "login", summary: "Sign in", run: runLogin},
		{name: "register", summary: "Create an account", run: runRegister},
		{name: "logout", summary: "Sign out and forget the saved session", run: runLogout},
		{name: "whoami", summary: "Show the signed in user", run: runWhoami},
		{name: "forgot-password", summary: "Email a password reset link", run: runForgotPassword},
		{name: "reset-password", summary: "Set a new password from a reset token", run: runResetPassword},
		{name: "dashboard", summary: "List brand profiles", run: runDashboard},
		{name: "generate", summary: "Generate a 30 day calendar for a profile", run: runGenerate},
		{name: "delete-profile", summary: "Delete a brand profile", run: runDeleteProfile},
		{name: "onboarding", summary: "Create a brand profile interactively", run: runOnboarding},
		{name: "calendar", summary: "Show a profile's calendar or one post", run: runCalendar},
		{name: "approve", summary: "Approve one post", run: runApprove},
		{name: "approve-all", summary: "Approve every draft post", run: runApproveAll},
		{name: "edit", summary: "Edit a post", run: runEdit},
		{name: "regenerate", summary: "Regenerate a post with AI", run: runRegenerate},
		{name: "optimize", summary: "Get AI suggestions for part of a post", run: runOptimize},
		{name: "delete-post", summary: "Delete a post", run: runDeletePost},
		{name: "pillars", summary: "List a profile's content pillars", run: runPillars},
		{name: "add-pillar", summary: "Add a content pillar", run: runAddPillar},
		{name: "delete-pillar", summary: "Delete a content pillar", run: runDeletePillar},
		{name: "edit-profile", summary: "Edit a brand profile", run: runEditProfile},
		{name: "settings", summary: "Show or change account settings", run: runSettings},
		{name: "open", summary: "Resolve a page path", run: runOpen},
	}
}
