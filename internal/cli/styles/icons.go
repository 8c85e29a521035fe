package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconGo        = "\ue627" // go gopher
	IconGrid      = "\uf00a" // th
	IconConfig    = "\ue615" // config
	IconCheck     = "\uf00c" // check
	IconX         = "\uf00d" // x
	IconInfo      = "\uf05a" // info
)
