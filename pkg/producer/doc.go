// Package producer defines the record-producing boundary of a census run
// and ships a few local producers usable out of the box: System (OS, CPU,
// memory facts), Interfaces (network interfaces), and Systemd (unit
// states).
//
// The bundled producers read from the machine the process runs on; remote
// transport is deliberately outside this package.
package producer
