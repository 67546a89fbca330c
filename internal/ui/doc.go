package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// Images are added through a file dialog or by dropping files on the window;
// each one is run through the image checker and listed with its status.
