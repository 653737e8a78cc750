// Package common holds helpers shared by the tool packages: account
// argument extraction and the instrumentation wrapper applied to every
// registered tool handler.
package common
