// Package ds implements the containers the library console is built on:
// a singly linked List, a CursorList with a forward-only point of interest,
// a fixed-capacity chained HashTable, a Set over that table and a growable
// circular Queue.
//
// None of the containers are safe for concurrent use.
package ds
