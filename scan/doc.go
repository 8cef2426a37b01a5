// Package scan walks a git working tree and reports lines containing marker
// keys such as FIXME.
//
// A Walker descends from a start directory through an fs.ReadFS. Every entry
// is classified against a Repository: the .git directory, symbolic links,
// ignored paths and files absent from the index are skipped. Admitted files
// are read line by line and each matching line is handed to a Printer in one
// of four modes:
//
//	ModeDefault    <path>:<line> <content>
//	ModeFileOnly   <path>                      once per file
//	ModeInsertion  <path>:<content> @ <commit> commit that last changed the line
//	ModeStats      <files> <matches>           once, after the walk
//
// Faults on individual entries are printed inline and counted; they never
// stop the walk. The Result returned by Walk says whether any occurred.
package scan
