// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ConfigNotFoundId Id = iota + 1
	MultipleConfigsId
	ConfigDirUnavailableId
	ConfigDirUnreadableId
	ConfigReadFailedId
	ConfigFormatUndeterminedId
	ConfigSyntaxErrorId
	InvalidProgramNameId
	InvalidConfigPathId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Title returns the text of the page's first heading.
func (i *Issue) Title() string {
	for _, line := range strings.Split(string(i.mdMsg), "\n") {
		if title, ok := strings.CutPrefix(line, "# "); ok {
			return strings.TrimSpace(title)
		}
	}
	return ""
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the issue page for the terminal using the given glamour
// style ("dark", "light", "notty", ...).
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.extLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range i.extLinks {
			md.WriteString("\n- <" + string(link) + ">")
		}
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	configNotFoundIssue = &Issue{
		id: ConfigNotFoundId,
		mdMsg: `
# No config file found!

procman looked for a config file but none of the searched directories held one.

## Search locations (in order of precedence):
1. Current directory
2. The per-user config directory (` + "`procman config path --dir`" + `)

## Recognized file names:
- procman.toml
- procman.json
- procman.yaml or procman.yml
- procman or procman.conf (format detected from the contents)

## Things you can try:
- Create a config in your current directory:
~~~toml
[programs.web]
command = ["python3", "-m", "http.server", "8080"]
~~~

- Or point procman at an existing file:
~~~
$ procman --config ./deploy/procman.yaml programs
~~~`,
	}

	multipleConfigsIssue = &Issue{
		id: MultipleConfigsId,
		mdMsg: `
# More than one config file in a directory!

A directory may contain at most one procman config. procman will not guess
which one you meant.

## Things you can try:
- Remove or rename all but one of the listed files
- Pick one explicitly:
~~~
$ procman --config ./procman.toml programs
~~~`,
	}

	configDirUnavailableIssue = &Issue{
		id: ConfigDirUnavailableId,
		mdMsg: `
# Could not determine the config directory!

The per-user config directory is derived from your home directory, and none
could be found for the current user.

## Things you can try:
- Set the HOME environment variable (or APPDATA on Windows)
- On Linux, set XDG_CONFIG_HOME to an absolute path
- Skip the search entirely with ` + "`--config <path>`",
		extLinks: []HttpLink{"https://specifications.freedesktop.org/basedir-spec/latest/"},
	}

	configDirUnreadableIssue = &Issue{
		id: ConfigDirUnreadableId,
		mdMsg: `
# Could not read a search directory!

Every search directory must be readable, including the per-user config
directory even when no config lives there.

## Things you can try:
- Create the directory shown in the error:
~~~
$ mkdir -p "$(procman config path --dir)"
~~~
- Fix its permissions
- Skip the search entirely with ` + "`--config <path>`",
	}

	configReadFailedIssue = &Issue{
		id: ConfigReadFailedId,
		mdMsg: `
# Could not read the config file!

The file exists in a search location or was named on the command line, but its
contents could not be read.

## Things you can try:
- Check that the path points at a regular file
- Check the file permissions`,
	}

	configFormatUndeterminedIssue = &Issue{
		id: ConfigFormatUndeterminedId,
		mdMsg: `
# Could not detect the config format!

Files named ` + "`procman`" + ` or ` + "`procman.conf`" + ` carry no format hint, so procman
tried TOML, JSON and YAML in turn. None of them accepted the file.

## Things you can try:
- Rename the file with a format extension to get a precise syntax error:
~~~
$ mv procman procman.toml
$ procman config validate
~~~`,
	}

	configSyntaxErrorIssue = &Issue{
		id: ConfigSyntaxErrorId,
		mdMsg: `
# Config file has errors!

The config file was found but could not be decoded.

## Common issues:
- Missing ` + "`programs`" + ` table, or a program without a ` + "`command`" + `
- ` + "`command`" + ` given as a string instead of a list of strings
- Trailing commas or comments in plain TOML

## Expected structure:
~~~yaml
programs:
  web:
    command: [python3, -m, http.server, "8080"]
  worker:
    command: [./worker, --queue, default]
~~~`,
		extLinks: []HttpLink{
			"https://toml.io/en/v1.0.0",
			"https://yaml.org/spec/1.2.2/",
		},
	}

	invalidProgramNameIssue = &Issue{
		id: InvalidProgramNameId,
		mdMsg: `
# Invalid program name!

Program names may only contain ASCII letters, digits, ` + "`_`" + ` and ` + "`-`" + `.

## Things you can try:
- Rename the program, e.g. ` + "`my app`" + ` to ` + "`my-app`",
	}

	invalidConfigPathIssue = &Issue{
		id: InvalidConfigPathId,
		mdMsg: `
# Invalid config path!

The path given with ` + "`--config`" + ` does not name a file.

## Things you can try:
- Pass the path of the file itself, not a directory such as ` + "`.`" + ` or ` + "`/`",
	}

	issues = map[Id]*Issue{
		configNotFoundIssue.Id():           configNotFoundIssue,
		multipleConfigsIssue.Id():          multipleConfigsIssue,
		configDirUnavailableIssue.Id():     configDirUnavailableIssue,
		configDirUnreadableIssue.Id():      configDirUnreadableIssue,
		configReadFailedIssue.Id():         configReadFailedIssue,
		configFormatUndeterminedIssue.Id(): configFormatUndeterminedIssue,
		configSyntaxErrorIssue.Id():        configSyntaxErrorIssue,
		invalidProgramNameIssue.Id():       invalidProgramNameIssue,
		invalidConfigPathIssue.Id():        invalidConfigPathIssue,
	}
)

// Values returns every catalog entry ordered by Id.
func Values() []*Issue {
	out := maps.Values(issues)
	slices.SortFunc(out, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return out
}

func Get(id Id) *Issue {
	return issues[id]
}
