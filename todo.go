/*
	Project: Study Saathi, a student planner (assignments, class schedule, notes)
	Target: secondary school students, one device, offline first
*/
package saathi

/*
TODO: derive CurrentStreak from note/assignment activity instead of editing it by hand
TODO: `saathi import` reading the export format back (json|yaml)
TODO: reminders for assignments due soon (needs a scheduler; the store only computes DueSoon)

Storage:
	- bolt (default): one file under ./data
	- sqlite / postgres: kv_store table, migrated on open
	- memory: tests & demos
*/
