// Package abi mirrors the C structures of libassimp's public API.
//
// Every type in this package has the same field order, scalar widths and
// fixed-array capacities as its C counterpart, so a pointer returned by the
// library can be reinterpreted as a pointer to the matching Go type. Go lays
// out struct fields in declaration order with the platform's natural
// alignment, which is what the C compiler does for these headers.
//
// The mirror is pinned to libassimp 5.3 and 5.4 built with default options
// (ASSIMP_BUILD_NO_ARMATUREPOPULATE_PROCESS undefined, so aiBone carries
// mArmature and mNode). Layout cannot be verified at run time; the native
// gateway only checks the library's reported version.
//
// Fields that are private to the library, or that point at records this
// binding never reads, are still declared: removing them would shift every
// following offset.
//
// Nothing here allocates or mutates foreign memory.
package abi
