// Package prerequisites checks that the external tools a run shells out to are installed.
package prerequisites

import (
	"fmt"
	"os/exec"
	"strings"
)

// Tool represents a client tool that may be required.
type Tool struct {
	// Name is the binary name to look for in PATH.
	Name string

	// Required indicates if this tool is mandatory.
	Required bool

	// Description explains what the tool is used for.
	Description string

	// InstallURL provides a URL for installation instructions.
	InstallURL string
}

// installURLs points at the install docs of each supported package manager.
var installURLs = map[string]string{
	"npm":  "https://nodejs.org/en/download",
	"yarn": "https://yarnpkg.com/getting-started/install",
	"pnpm": "https://pnpm.io/installation",
	"bun":  "https://bun.sh/docs/installation",
}

// RequiredTools returns the tools a run cannot do without.
// npx runs the project generator; packageManager installs the add-ons.
func RequiredTools(packageManager string) []Tool {
	tools := []Tool{
		{
			Name:        "npx",
			Required:    true,
			Description: "Runs the React Native project generator",
			InstallURL:  installURLs["npm"],
		},
	}
	if packageManager != "" && packageManager != "npx" {
		url, ok := installURLs[packageManager]
		if !ok {
			url = installURLs["npm"]
		}
		tools = append(tools, Tool{
			Name:        packageManager,
			Required:    true,
			Description: "Installs the selected add-on packages",
			InstallURL:  url,
		})
	}
	return tools
}

// OptionalTools returns tools needed later to build and run the app.
// CocoaPods is only listed on macOS, where iOS builds are possible.
func OptionalTools(goos string) []Tool {
	tools := []Tool{
		{
			Name:        "adb",
			Required:    false,
			Description: "Android platform tools, used by the android run script",
			InstallURL:  "https://developer.android.com/tools/releases/platform-tools",
		},
	}
	if goos == "darwin" {
		tools = append(tools, Tool{
			Name:        "pod",
			Required:    false,
			Description: "CocoaPods, used by npx pod-install for iOS builds",
			InstallURL:  "https://guides.cocoapods.org/using/getting-started.html",
		})
	}
	return tools
}

// CheckResult contains the result of checking a single tool.
type CheckResult struct {
	Tool    Tool
	Found   bool
	Path    string
	Version string
}

// CheckResults contains the results of checking multiple tools.
type CheckResults struct {
	Results []CheckResult
	Missing []Tool
}

// HasErrors returns true if any required tools are missing.
func (r *CheckResults) HasErrors() bool {
	for _, tool := range r.Missing {
		if tool.Required {
			return true
		}
	}
	return false
}

// Error returns an error if any required tools are missing.
func (r *CheckResults) Error() error {
	var missing []string
	for _, tool := range r.Missing {
		if tool.Required {
			missing = append(missing, fmt.Sprintf("%s (%s)", tool.Name, tool.InstallURL))
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("missing required tools: %s", strings.Join(missing, ", "))
}

// Check verifies that the specified tools are available.
func Check(tools []Tool) *CheckResults {
	results := &CheckResults{}

	for _, tool := range tools {
		result := CheckResult{Tool: tool}

		path, err := exec.LookPath(tool.Name)
		if err == nil {
			result.Found = true
			result.Path = path
			result.Version = getToolVersion(tool.Name)
		} else {
			results.Missing = append(results.Missing, tool)
		}

		results.Results = append(results.Results, result)
	}

	return results
}

// CheckRequired checks the tools needed to provision with packageManager.
func CheckRequired(packageManager string) *CheckResults {
	return Check(RequiredTools(packageManager))
}

// CheckAll checks required and optional tools.
func CheckAll(packageManager, goos string) *CheckResults {
	required := RequiredTools(packageManager)
	optional := OptionalTools(goos)
	all := make([]Tool, 0, len(required)+len(optional))
	all = append(all, required...)
	all = append(all, optional...)
	return Check(all)
}

// getToolVersion attempts to get the version of a tool.
// Returns empty string if version cannot be determined.
func getToolVersion(name string) string {
	for _, flag := range []string{"--version", "version"} {
		// #nosec G204 - name comes from trusted Tool definitions, not user input
		output, err := exec.Command(name, flag).Output()
		if err == nil {
			lines := strings.Split(string(output), "\n")
			if len(lines) > 0 {
				return strings.TrimSpace(lines[0])
			}
		}
	}

	return ""
}
