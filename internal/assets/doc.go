package assets

// Package assets embeds the resources packaged with the application binary.
