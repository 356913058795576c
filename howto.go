// Package howto extracts structured how-to guides from instructional
// articles on a third-party site. Given a free-text query it resolves the
// best matching article, fetches it, and mines title, introduction,
// prerequisites, ordered steps with tips, and related links out of markup
// that varies from article to article.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, rod/, gemini/).
package howto
