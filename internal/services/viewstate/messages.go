package viewstate

import "github.com/mcoot/mtarp-portal/internal/model"

// User-facing notification texts
const (
	LoginFailedFallback    = "Login failed. Please check your username and password."
	RegisterFailedFallback = "Registration failed. Please check the form and try again."
	ConnectionFailedText   = "Could not reach the server. Please try again later."
	RegisteredText         = "Account created. You can now log in."
	LoggedOutText          = "You have been logged out."
)

func loginSuccess(serverMessage, username string) *model.Notification {
	msg := serverMessage
	if msg == "" {
		msg = "Welcome back, " + username + "!"
	}
	return &model.Notification{Kind: model.NotificationSuccess, Title: "Logged in", Message: msg}
}

func loginRejected(serverMessage string) *model.Notification {
	return &model.Notification{Kind: model.NotificationError, Title: "Login failed", Message: orDefault(serverMessage, LoginFailedFallback)}
}

func registerSuccess(serverMessage string) *model.Notification {
	return &model.Notification{Kind: model.NotificationSuccess, Title: "Registered", Message: orDefault(serverMessage, RegisteredText)}
}

func registerRejected(serverMessage string) *model.Notification {
	return &model.Notification{Kind: model.NotificationError, Title: "Registration failed", Message: orDefault(serverMessage, RegisterFailedFallback)}
}

func connectionFailed() *model.Notification {
	return &model.Notification{Kind: model.NotificationError, Title: "Connection error", Message: ConnectionFailedText}
}

func loggedOut() *model.Notification {
	return &model.Notification{Kind: model.NotificationInfo, Title: "Logged out", Message: LoggedOutText}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
