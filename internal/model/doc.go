// Package model turns raw source rows into the document hierarchy.
//
// The transformation has two stages:
//
//  1. Normalize validates rows and converts them to typed Items, dropping
//     rows without a chapter, section or type.
//  2. Build groups Items into Chapters and Sections, orders them, and
//     allocates anchor identifiers shared by the document and its TOC.
//
// Ordering differs by level. Chapters keep the order in which they first
// appear in the source, sections are sorted by name, and items are sorted
// by their Order column with source order breaking ties. Each level has its
// own comparator.
package model
