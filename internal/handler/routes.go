package handler

// APIV1Prefix is the canonical base path for the public HTTP API v1.
const APIV1Prefix = "/api/v1"

// FeedPath serves the websocket spectator feed.
const FeedPath = "/ws/match"
