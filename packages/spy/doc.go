// Package spy records calls made to functions under test.
//
// A spy stands in for a function: Create builds one for a function type and
// On swaps one into a func variable or struct field. Every call records its
// arguments; what the call does is configured with AndReturn, AndThrow,
// AndCall and AndCallThrough. Spies installed with On are restored with
// Restore or, all at once, with RestoreAll.
//
//	s := spy.On(&client.Fetch).AndReturn(nil, errNotFound)
//	defer s.Restore()
//
// expect recognizes spies through the Recorder interface.
package spy
