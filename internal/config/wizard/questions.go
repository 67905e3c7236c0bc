package wizard

import "github.com/imamik/rnsetup/internal/project"

// Answers offered for every add-on question.
const (
	AnswerYes = "Yes"
	AnswerNo  = "No"
)

// YesNo is the option list of an add-on question.
var YesNo = []string{AnswerYes, AnswerNo}

// Question is one yes/no add-on question bound to a request field.
type Question struct {
	Key   string
	Title string
	set   func(r *project.Request, v bool)
}

// Questions are asked in this order. They are independent of each other.
var Questions = []Question{
	{
		Key:   "reactNavigation",
		Title: "Install React Navigation?",
		set:   func(r *project.Request, v bool) { r.Navigation = v },
	},
	{
		Key:   "stackNavigation",
		Title: "Install Stack Navigator?",
		set:   func(r *project.Request, v bool) { r.StackNavigator = v },
	},
	{
		Key:   "bottomTabsNavigation",
		Title: "Install Bottom Tabs Navigator?",
		set:   func(r *project.Request, v bool) { r.BottomTabsNavigator = v },
	},
	{
		Key:   "drawerNavigation",
		Title: "Install Drawer Navigator?",
		set:   func(r *project.Request, v bool) { r.DrawerNavigator = v },
	},
	{
		Key:   "axios",
		Title: "Install Axios?",
		set:   func(r *project.Request, v bool) { r.HTTPClient = v },
	},
	{
		Key:   "files",
		Title: "Add folder structure (src/)?",
		set:   func(r *project.Request, v bool) { r.FolderStructure = v },
	},
}

// namePrompt is the project name question.
var namePrompt = InputPrompt{
	Title:       "Enter the name of your application",
	Description: "Must be camelCase, e.g. myApp",
	Placeholder: "myApp",
	Validate:    project.ValidateName,
}

// IsYes maps an answer to its boolean value. Anything but "Yes" is false.
func IsYes(answer string) bool {
	return answer == AnswerYes
}
