package handlers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/rnsetup/internal/config/wizard"
	"github.com/imamik/rnsetup/internal/project"
	"github.com/imamik/rnsetup/internal/provisioning"
	"github.com/imamik/rnsetup/internal/ui/console"
	"github.com/imamik/rnsetup/internal/util/logging"
	"github.com/imamik/rnsetup/internal/util/prerequisites"
)

func defaultOptions() InitOptions {
	return InitOptions{
		ParentDir:      ".",
		Generator:      "@react-native-community/cli@latest",
		PackageManager: "npm",
	}
}

func TestInit_NoAddOns(t *testing.T) {
	env := setupHandlers(t, project.Request{Name: "myApp"})

	err := Init(context.Background(), defaultOptions())
	require.NoError(t, err)

	require.Len(t, env.exec.commands, 1)
	assert.Equal(t, "npx @react-native-community/cli@latest init myApp", env.exec.commands[0].String())
	assert.Equal(t, ".", env.exec.commands[0].Dir)
	assert.Empty(t, env.exec.dirs)

	out := env.out.String()
	assert.Contains(t, out, "React Native Project Setup")
	assert.Contains(t, out, "Project created successfully!")
	assert.Contains(t, out, "cd myApp && npx pod-install")
	assert.Contains(t, out, "cd myApp && npm run android")
	assert.Contains(t, out, "For iOS: npm run ios")
	assert.Contains(t, out, "App is ready!")
	assert.Equal(t, 1, env.wizardCalls)
}

func TestInit_AllAddOnsInOrder(t *testing.T) {
	env := setupHandlers(t, project.Request{
		Name:                "coolProject",
		Navigation:          true,
		StackNavigator:      true,
		BottomTabsNavigator: true,
		DrawerNavigator:     true,
		HTTPClient:          true,
		FolderStructure:     true,
	})

	opts := defaultOptions()
	opts.ParentDir = "work"
	require.NoError(t, Init(context.Background(), opts))

	require.Len(t, env.exec.commands, 6)
	assert.Equal(t, "work", env.exec.commands[0].Dir)
	for _, c := range env.exec.commands[1:] {
		assert.Equal(t, filepath.Join("work", "coolProject"), c.Dir)
		assert.Equal(t, "npm", c.Name)
		assert.Equal(t, "install", c.Args[0])
	}
	assert.Contains(t, env.exec.commands[1].Args, "@react-navigation/native")
	assert.Contains(t, env.exec.commands[5].Args, "axios")
	assert.Equal(t, []string{filepath.Join("work", "coolProject")}, env.exec.dirs)
	assert.Contains(t, env.out.String(), "Installing Axios...")
}

func TestInit_GenerateFailure(t *testing.T) {
	env := setupHandlers(t, project.Request{Name: "myApp", Navigation: true})
	env.exec.failOn = "npx"

	err := Init(context.Background(), defaultOptions())
	require.Error(t, err)

	var stepErr *provisioning.StepError
	require.True(t, errors.As(err, &stepErr))
	assert.Equal(t, provisioning.StepGenerate, stepErr.Step)

	assert.Len(t, env.exec.commands, 1)
	out := env.out.String()
	assert.Contains(t, out, "Error creating project")
	assert.NotContains(t, out, "Project created successfully!")
	assert.NotContains(t, out, "pod-install")
}

func TestInit_FailureLogsStep(t *testing.T) {
	env := setupHandlers(t, project.Request{Name: "myApp", HTTPClient: true})
	env.exec.failOn = "axios"

	var logs bytes.Buffer
	ctx := logr.NewContext(context.Background(), logging.New(&logs, 1))

	require.Error(t, Init(ctx, defaultOptions()))
	assert.Contains(t, logs.String(), `"msg"="provisioning stopped" "state"="failed" "step"="install http-client" "executed"=2`)
}

func TestInit_InstallFailureStopsRun(t *testing.T) {
	env := setupHandlers(t, project.Request{
		Name:           "myApp",
		Navigation:     true,
		StackNavigator: true,
		HTTPClient:     true,
	})
	env.exec.failOn = "@react-navigation/stack"

	err := Init(context.Background(), defaultOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "install stack-navigator")

	assert.Len(t, env.exec.commands, 3)
	assert.Contains(t, env.out.String(), "Error creating project")
	assert.NotContains(t, env.out.String(), "App is ready!")
}

func TestInit_PresetWithName(t *testing.T) {
	env := setupHandlers(t, project.Request{})

	path := filepath.Join(t.TempDir(), "preset.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: reactNativeApp
packageManager: yarn
features:
  httpClient: true
`), 0o600))

	opts := defaultOptions()
	opts.PresetPath = path
	require.NoError(t, Init(context.Background(), opts))

	assert.Equal(t, 0, env.wizardCalls)
	assert.Equal(t, 0, env.nameCalls)
	require.Len(t, env.exec.commands, 2)
	assert.Equal(t, "npx @react-native-community/cli@latest init reactNativeApp", env.exec.commands[0].String())
	assert.Equal(t, "yarn add axios", env.exec.commands[1].String())
	assert.Contains(t, env.out.String(), "[->] Using preset "+path)
	assert.Contains(t, env.out.String(), "cd reactNativeApp && yarn android")
}

func TestInit_PresetWithoutNameAsksForName(t *testing.T) {
	env := setupHandlers(t, project.Request{Name: "myApp"})

	path := filepath.Join(t.TempDir(), "preset.yaml")
	require.NoError(t, os.WriteFile(path, []byte("features:\n  folderStructure: true\n"), 0o600))

	opts := defaultOptions()
	opts.PresetPath = path
	require.NoError(t, Init(context.Background(), opts))

	assert.Equal(t, 0, env.wizardCalls)
	assert.Equal(t, 1, env.nameCalls)
	assert.Len(t, env.exec.commands, 1)
	assert.Equal(t, []string{"myApp"}, env.exec.dirs)
}

func TestInit_PresetWithInvalidName(t *testing.T) {
	env := setupHandlers(t, project.Request{})

	path := filepath.Join(t.TempDir(), "preset.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: my-app\n"), 0o600))

	opts := defaultOptions()
	opts.PresetPath = path
	err := Init(context.Background(), opts)

	require.ErrorIs(t, err, project.ErrNameNotCamelCase)
	assert.Empty(t, env.exec.commands)
}

func TestInit_DryRun(t *testing.T) {
	env := setupHandlers(t, project.Request{Name: "myApp", HTTPClient: true})
	checked := false
	checkPrerequisites = func(string) *prerequisites.CheckResults {
		checked = true
		return &prerequisites.CheckResults{}
	}

	opts := defaultOptions()
	opts.DryRun = true
	require.NoError(t, Init(context.Background(), opts))

	assert.False(t, checked)
	assert.Empty(t, env.exec.commands)

	out := env.out.String()
	assert.Contains(t, out, "$ npx @react-native-community/cli@latest init myApp")
	assert.Contains(t, out, "$ (cd myApp) npm install axios")
	assert.Contains(t, out, "nothing was executed")
	assert.NotContains(t, out, "pod-install")
}

func TestInit_MissingPrerequisites(t *testing.T) {
	env := setupHandlers(t, project.Request{Name: "myApp"})
	checkPrerequisites = func(string) *prerequisites.CheckResults {
		npx := prerequisites.Tool{Name: "npx", Required: true, InstallURL: "https://nodejs.org/en/download"}
		return &prerequisites.CheckResults{Missing: []prerequisites.Tool{npx}}
	}

	err := Init(context.Background(), defaultOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "npx")
	assert.Equal(t, 0, env.wizardCalls)
	assert.Empty(t, env.exec.commands)
}

func TestInit_WizardAborted(t *testing.T) {
	env := setupHandlers(t, project.Request{})
	runWizard = func(context.Context, wizard.Prompter, *console.Printer) (project.Request, error) {
		return project.Request{}, huh.ErrUserAborted
	}

	err := Init(context.Background(), defaultOptions())
	require.ErrorIs(t, err, huh.ErrUserAborted)
	assert.Empty(t, env.exec.commands)
}

func TestInit_ClosedStdinCancelsWizard(t *testing.T) {
	env := setupHandlers(t, project.Request{})
	newPrompter = func(bool) wizard.Prompter {
		return &wizard.HuhPrompter{In: strings.NewReader(""), Out: io.Discard, Accessible: true}
	}
	runWizard = wizard.Collect

	err := Init(context.Background(), defaultOptions())

	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Contains(t, err.Error(), "wizard canceled")
	assert.Empty(t, env.exec.commands)
}

func TestInit_PipedAnswers(t *testing.T) {
	env := setupHandlers(t, project.Request{})
	newPrompter = func(bool) wizard.Prompter {
		return &wizard.HuhPrompter{In: strings.NewReader("myApp\n2\n2\n2\n2\n1\n2\n"), Out: io.Discard, Accessible: true}
	}
	runWizard = wizard.Collect

	require.NoError(t, Init(context.Background(), defaultOptions()))

	require.Len(t, env.exec.commands, 2)
	assert.Equal(t, "npm install axios", env.exec.commands[1].String())
	assert.Empty(t, env.exec.dirs)
}

func TestInit_UnknownPackageManager(t *testing.T) {
	setupHandlers(t, project.Request{Name: "myApp"})

	opts := defaultOptions()
	opts.PackageManager = "maven"
	err := Init(context.Background(), opts)
	assert.Error(t, err)
}

func TestInit_WritesMetricsFile(t *testing.T) {
	setupHandlers(t, project.Request{Name: "myApp", Navigation: true})

	opts := defaultOptions()
	opts.MetricsFile = filepath.Join(t.TempDir(), "rnsetup.prom")
	require.NoError(t, Init(context.Background(), opts))

	data, err := os.ReadFile(opts.MetricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `rnsetup_provisioning_runs_total{result="success"} 1`)
	assert.Contains(t, string(data), `rnsetup_provisioning_steps_total{result="skipped",step="install stack-navigator"} 1`)
}
