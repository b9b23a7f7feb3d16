package noticeboard

/*
Noticeboard is a small note board service. Clients look up a note by its title, stream every note written by an author,
and append batches of notes over a client stream. Notes live in memory only; the board starts from a seed set and grows
by appending, so the order in which notes were added is the order every reader sees.

Building Noticeboard produces two executables: noticeboard-server and noticeboard-ctl. The first serves the board over
gRPC, plus an optional HTTP status port with a read-only JSON view and Prometheus metrics. The second is a command line
client for it.

The `noticeboard` module is organized into the following packages:

* `board`: the board service itself; its configuration, storage, gRPC handlers and the two executables.
* `client`: a Go client library for the service.
* `proto`: the protocol definition and the Go types and gRPC stubs for it.
* `pkg`: small helpers shared by the service, the client and tests (logging, TLS/gRPC dialing, test addresses).
*/
