// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and repositories
// (defined in internal/store) to fulfill application features.
//
// Each subpackage covers a domain area: auth runs the SMS login flow and
// token issuance; practice drives the memorization cycle over web and SMS.
//
// Services receive dependencies through constructor injection and depend on
// domain entities and repository interfaces (from store), never on specific
// infrastructure implementations. They apply transactional boundaries when
// an operation spans multiple repositories and translate domain errors into
// application-level errors for the API layer.
package service
