// Package session is the top-level state of the editor.
//
// A Session starts Uninitialized and moves to Loaded or LoadFailed on Load.
// While Loaded the user views one category at a time; the synthetic home
// category is display only. Edits are applied to the in-memory document as
// they happen, there is no pending transaction:
//
//	Uninitialized --Load--> Loaded(Viewing home) | LoadFailed
//	Loaded --Select(k)--> Loaded(Viewing k)
//	Loaded --Save|Reset|Revert--> (write, reload) --> Loaded
//
// Every action is synchronous and leaves a timestamped status message.
package session
