package project

// Feature identifies an optional add-on that is installed through the package manager.
type Feature string

// Installable add-ons, in installation order.
const (
	FeatureNavigation          Feature = "navigation"
	FeatureStackNavigator      Feature = "stack-navigator"
	FeatureBottomTabsNavigator Feature = "bottom-tabs"
	FeatureDrawerNavigator     Feature = "drawer-navigator"
	FeatureHTTPClient          Feature = "http-client"
)

// Features returns the installable add-ons in installation order.
func Features() []Feature {
	return []Feature{
		FeatureNavigation,
		FeatureStackNavigator,
		FeatureBottomTabsNavigator,
		FeatureDrawerNavigator,
		FeatureHTTPClient,
	}
}

// Labels are the human-readable add-on names used in prompts and status lines.
var Labels = map[Feature]string{
	FeatureNavigation:          "React Navigation",
	FeatureStackNavigator:      "Stack Navigator",
	FeatureBottomTabsNavigator: "Bottom Tabs Navigator",
	FeatureDrawerNavigator:     "Drawer Navigator",
	FeatureHTTPClient:          "Axios",
}

// Dependencies maps each add-on to the packages installed for it, in order.
var Dependencies = map[Feature][]string{
	FeatureNavigation: {
		"@react-navigation/native",
		"react-native-screens",
		"react-native-safe-area-context",
	},
	FeatureStackNavigator: {
		"@react-navigation/stack",
		"react-native-gesture-handler",
		"@react-native-masked-view/masked-view",
	},
	FeatureBottomTabsNavigator: {
		"@react-navigation/bottom-tabs",
	},
	FeatureDrawerNavigator: {
		"@react-navigation/drawer",
		"react-native-gesture-handler",
		"react-native-reanimated",
	},
	FeatureHTTPClient: {
		"axios",
	},
}

// SourceRoot is the directory, relative to the project, that holds FolderLayout.
const SourceRoot = "src"

// FolderLayout is the conventional directory set created under SourceRoot.
var FolderLayout = []string{
	"components",
	"screens",
	"api",
	"utils",
	"navigation",
	"assets",
}

// Label returns the display name of f, falling back to its identifier.
func (f Feature) Label() string {
	if l, ok := Labels[f]; ok {
		return l
	}
	return string(f)
}

// Packages returns a copy of the package list for f.
func (f Feature) Packages() []string {
	deps := Dependencies[f]
	out := make([]string, len(deps))
	copy(out, deps)
	return out
}
