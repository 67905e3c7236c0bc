package handlers

import (
	"strings"

	"github.com/imamik/rnsetup/internal/project"
	"github.com/imamik/rnsetup/internal/provisioning"
)

// Features prints the add-on catalog with the packages each one installs.
func Features() error {
	out := newPrinter()

	out.Banner("Add-ons")
	for _, f := range project.Features() {
		out.Label(f.Label(), "("+string(f)+")")
		out.Plain("    %s", strings.Join(f.Packages(), " "))
	}

	out.Section("Folder structure")
	for _, p := range provisioning.FolderPaths() {
		out.Plain("    %s/", p)
	}
	return nil
}
