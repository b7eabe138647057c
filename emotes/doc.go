// Package emotes fetches custom emote sets from a 7TV-compatible API.
//
// The package is responsible for the payload schema, a single-request
// transport client, a fire-once async loader, and the projection of emotes
// into picker entries for the field component.
package emotes
