/*
Package tree implements an all-purpose mutable tree type.

Nodes carry a payload of type parameter T and own an ordered slice of
children. Clients usually embed a Node into their own node type and let the
payload point back to the embedding struct (see package ast for an example).

Removing children while iterating over them is supported by iterating over
snapshots: Children() returns a copy of the children slice, and the
traversal function TopDown collects children only after it has visited
their parent.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree
