package project

import "fmt"

// Request is the complete set of choices collected before provisioning starts.
type Request struct {
	Name Name

	Navigation          bool
	StackNavigator      bool
	BottomTabsNavigator bool
	DrawerNavigator     bool
	HTTPClient          bool
	FolderStructure     bool
}

// Wants reports whether the add-on f was selected.
func (r Request) Wants(f Feature) bool {
	switch f {
	case FeatureNavigation:
		return r.Navigation
	case FeatureStackNavigator:
		return r.StackNavigator
	case FeatureBottomTabsNavigator:
		return r.BottomTabsNavigator
	case FeatureDrawerNavigator:
		return r.DrawerNavigator
	case FeatureHTTPClient:
		return r.HTTPClient
	default:
		return false
	}
}

// Selected returns the chosen installable add-ons in installation order.
func (r Request) Selected() []Feature {
	var out []Feature
	for _, f := range Features() {
		if r.Wants(f) {
			out = append(out, f)
		}
	}
	return out
}

// Validate checks that the request is fully populated.
func (r Request) Validate() error {
	if err := ValidateName(string(r.Name)); err != nil {
		return fmt.Errorf("invalid project name %q: %w", r.Name, err)
	}
	return nil
}
