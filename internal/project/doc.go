// Package project defines the data handed from input collection to provisioning.
//
// A Request carries a validated Name plus one flag per optional add-on. The
// add-on catalog (Dependencies, FolderLayout) is static data so the
// orchestration code never inlines package lists.
package project
