// Package rider holds the Rider aggregate: a motorbike courier who can be
// assigned to orders once the back office has approved them.
//
// Only the parts of a rider the order workflow needs are modelled here
// (identity, contact, rating and approval status). Onboarding, documents and
// payouts belong to other tools.
//
// Key business rules:
//   - a rider has a positive id, a name and a phone number
//   - the rating is stored times ten (47 means 4.7) and lies in [0, 50]
//   - only approved riders are available for assignment
package rider
