/*
Package models defines the data structures of the registration function.

Registration is the only stored entity. Its fields marshal to the table
attributes email, name, phone and password, and nothing else is written, so a
read returns exactly what was registered. The model registers its key schema
with the registry on init:

	{"email": "{email}"}

ResponseBody is the JSON document returned in the body of every response
envelope:

	{"message": "Registration successful"}
	{"message": "Ocorreu um erro.", "error": "<cause>"}
*/
package models
