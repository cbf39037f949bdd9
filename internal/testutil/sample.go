// SPDX-License-Identifier: MPL-2.0

package testutil

// Sample procman configurations, one per format, all describing the same
// two programs:
//
//	web    = ["nginx", "-g", "daemon off;"]
//	worker = ["bin/worker", "--queue", "default"]
const (
	SampleTOML = `[programs.web]
command = ["nginx", "-g", "daemon off;"]

[programs.worker]
command = ["bin/worker", "--queue", "default"]
`

	SampleJSON = `{
  "programs": {
    "web": {"command": ["nginx", "-g", "daemon off;"]},
    "worker": {"command": ["bin/worker", "--queue", "default"]}
  }
}
`

	SampleYAML = `programs:
  web:
    command: ["nginx", "-g", "daemon off;"]
  worker:
    command:
      - bin/worker
      - --queue
      - default
`
)

// SampleConfig returns the sample document for a format name
// ("toml", "json" or "yaml"), or "" for anything else.
func SampleConfig(format string) string {
	switch format {
	case "toml":
		return SampleTOML
	case "json":
		return SampleJSON
	case "yaml":
		return SampleYAML
	default:
		return ""
	}
}
