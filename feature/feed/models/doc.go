// Package models defines the feed payloads and their database mapping.
package models
