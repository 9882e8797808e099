// Package capitals supplies the city data behind the route solver: the
// capital cities of the Americas, their great-circle distances, and the
// plumbing that keeps the dataset fresh.
//
// # What the package offers
//
//   - A bundled snapshot (Default) embedded at build time, so the solver
//     works offline and deterministically out of the box.
//   - A Wikipedia scraper (Fetch) that rebuilds the dataset from the live
//     country table and each capital's coordinate markup.
//   - A JSON cache (LoadCache / SaveCache) between the two, so a successful
//     fetch is paid for once.
//   - Coordinate helpers: ParseDMS for Wikipedia's degree–minute–second
//     tokens and Haversine for great-circle distances.
//   - Matrix, a precomputed symmetric distance table that plugs straight
//     into the genetic solver.
//
// # Units
//
// Latitude and longitude are decimal degrees (north/east positive).
// Distances are kilometers on a sphere of radius 6371 km.
package capitals
