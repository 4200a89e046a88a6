// Package match provides domain entities and business logic for load-carrier
// pairing in the matching system. It implements the Match aggregate root with
// offer workflow and state transitions.
//
// The package includes:
//   - Match: The aggregate root pairing one load with one carrier, carrying
//     the score, deadhead, and financial estimates behind the pairing
//   - Status: A state machine with an explicit transition table enforcing the offer workflow
//   - RejectionReason: The fixed taxonomy of reasons a carrier may give when declining
//
// Key business rules:
//   - Matches must reference a valid load and carrier
//   - Score, deadhead miles, and fuel estimate are never negative; margin may be
//   - Status follows a defined workflow: pending -> offered -> accepted,
//     with rejection, expiry, and cancellation branches
//   - A rejection reason exists exactly when the match is rejected
//   - Cancellation assigns no rejection reason
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package match
