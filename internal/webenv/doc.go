// Package webenv loads the front end's runtime configuration from a flat
// KEY=VALUE environment file and renders it as the config.js script served
// to the browser.
//
// The file is re-read on every call to [FileLoader.Load], so edits take
// effect without restarting the server.
package webenv
