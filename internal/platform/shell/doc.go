// Package shell runs external commands on behalf of the provisioning steps.
//
// Every Command names the directory it runs in. The process never changes its
// own working directory, so steps cannot leak directory state into each other.
package shell
